package ledger

import (
	"time"

	"github.com/dealerops/backend/internal/domain/ledger"
)

// CreateSubAccountRequest represents a request to create a child account
// under an existing parent. The code is allocated automatically.
type CreateSubAccountRequest struct {
	ParentID int    `json:"parent_id" binding:"required"`
	Name     string `json:"name" binding:"required,min=1,max=200"`
}

// AccountResponse represents a ledger account in API responses
type AccountResponse struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ParentID  *int      `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAccountResponse converts an account to its response DTO
func ToAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Category:  string(a.Category),
		ParentID:  a.ParentID,
		CreatedAt: a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of accounts
func ToAccountResponses(accounts []ledger.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
