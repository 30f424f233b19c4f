package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/shared"
)

// AccountCategory classifies an account in the chart of accounts
type AccountCategory string

const (
	CategoryAssets      AccountCategory = "Assets"
	CategoryLiabilities AccountCategory = "Liabilities"
	CategoryEquity      AccountCategory = "Equity"
	CategoryRevenue     AccountCategory = "Revenue"
	CategoryExpenses    AccountCategory = "Expenses"
)

// SubAccountPadWidth is the zero-padding width for child code suffixes.
// Lexicographic ordering of codes stays correct only while this width
// is fixed; see TestAccountCodeOrdering for the 99-child boundary.
const SubAccountPadWidth = 2

// Account is one entry in the chart of accounts. Accounts form a tree:
// a child's code extends its parent's code with a dash-separated,
// zero-padded suffix (parent 2012 -> children 2012-01, 2012-02, ...).
// The integer id is storage-assigned. Accounts are created once and
// never deleted while a partner or cost entry references them; default
// ordering everywhere is lexicographic by code.
type Account struct {
	ID        int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	Category  AccountCategory `gorm:"type:varchar(20);not null" json:"category"`
	ParentID  *int            `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a root-level account
func NewAccount(code, name string, category AccountCategory) (*Account, error) {
	return newAccount(code, name, category, nil)
}

// NewSubAccount creates a child account under the given parent. The
// child's code must be a dash-separated extension of the parent's.
func NewSubAccount(code, name string, category AccountCategory, parent *Account) (*Account, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent account is required for a sub-account")
	}
	if !strings.HasPrefix(code, parent.Code+"-") {
		return nil, shared.NewDomainError("INVALID_CODE",
			fmt.Sprintf("Sub-account code %q must extend parent code %q", code, parent.Code))
	}
	return newAccount(code, name, category, &parent.ID)
}

func newAccount(code, name string, category AccountCategory, parentID *int) (*Account, error) {
	if err := validateAccountCode(code); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Invalid account category")
	}
	now := time.Now()
	return &Account{
		Code:      code,
		Name:      name,
		Category:  category,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsValid reports whether the category is one of the five known ones
func (c AccountCategory) IsValid() bool {
	switch c {
	case CategoryAssets, CategoryLiabilities, CategoryEquity, CategoryRevenue, CategoryExpenses:
		return true
	}
	return false
}

// IsSubAccount reports whether the account has a parent
func (a *Account) IsSubAccount() bool {
	return a.ParentID != nil
}

// SubAccountCode derives the code for the n-th child (1-based) of a
// parent account: parent code, a dash, and the zero-padded ordinal.
func SubAccountCode(parentCode string, ordinal int) string {
	return fmt.Sprintf("%s-%0*d", parentCode, SubAccountPadWidth, ordinal)
}

func validateAccountCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Account code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Account code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= '0' && r <= '9') || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Account code can only contain digits and hyphens")
		}
	}
	return nil
}
