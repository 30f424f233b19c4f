package migration

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dealerops/backend/internal/domain/expense"
	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/notification"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/trade"
)

// AutoMigrate creates the schema from the domain models and seeds the
// chart of accounts when it is empty. It backs the sqlite development
// mode; postgres deployments run the SQL migrations instead.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running auto-migration")

	if err := db.AutoMigrate(
		&ledger.Account{},
		&partner.TradingPartner{},
		&partner.Customer{},
		&inventory.Vehicle{},
		&trade.Sale{},
		&trade.Payment{},
		&expense.RecurringExpense{},
		&notification.Notification{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	return seedChartOfAccounts(db, logger)
}

func seedChartOfAccounts(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&ledger.Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check chart of accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	logger.Info("Seeding chart of accounts")
	if err := db.Create(initialChartOfAccounts()).Error; err != nil {
		return fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	return nil
}

// initialChartOfAccounts is the dealership's starting chart. The five
// payable roots under Accounts Payable (2011..2015) are the parents
// the partner provisioner allocates sub-accounts from; their ids must
// stay in step with the ledger section of the configuration.
func initialChartOfAccounts() []ledger.Account {
	parentAP := 10
	parentRevenue := 29

	return []ledger.Account{
		{ID: 1, Code: "1010", Name: "Cash on Hand", Category: ledger.CategoryAssets},
		{ID: 2, Code: "1020", Name: "Bank Account", Category: ledger.CategoryAssets},
		{ID: 3, Code: "1200", Name: "Vehicle Inventory", Category: ledger.CategoryAssets},
		{ID: 4, Code: "1300", Name: "Accounts Receivable", Category: ledger.CategoryAssets},
		{ID: 5, Code: "1500", Name: "Office Equipment", Category: ledger.CategoryAssets},
		{ID: 6, Code: "1600", Name: "Other Company Assets", Category: ledger.CategoryAssets},
		{ID: 10, Code: "2010", Name: "Accounts Payable", Category: ledger.CategoryLiabilities},
		{ID: 11, Code: "2011", Name: "Supplier Payables", Category: ledger.CategoryLiabilities, ParentID: &parentAP},
		{ID: 14, Code: "2012", Name: "Clearing Agent Payables", Category: ledger.CategoryLiabilities, ParentID: &parentAP},
		{ID: 15, Code: "2013", Name: "Tracker Payables", Category: ledger.CategoryLiabilities, ParentID: &parentAP},
		{ID: 16, Code: "2014", Name: "Insurance Payables", Category: ledger.CategoryLiabilities, ParentID: &parentAP},
		{ID: 17, Code: "2015", Name: "Broker Payables", Category: ledger.CategoryLiabilities, ParentID: &parentAP},
		{ID: 12, Code: "2020", Name: "Sales Tax Payable", Category: ledger.CategoryLiabilities},
		{ID: 13, Code: "2100", Name: "Loan Payable", Category: ledger.CategoryLiabilities},
		{ID: 20, Code: "3010", Name: "Company Capital", Category: ledger.CategoryEquity},
		{ID: 21, Code: "3020", Name: "Retained Earnings", Category: ledger.CategoryEquity},
		{ID: 29, Code: "4000", Name: "Sales Revenue", Category: ledger.CategoryRevenue},
		{ID: 30, Code: "4010", Name: "Vehicle Sales Revenue", Category: ledger.CategoryRevenue, ParentID: &parentRevenue},
		{ID: 31, Code: "4020", Name: "Service & Repair Revenue", Category: ledger.CategoryRevenue, ParentID: &parentRevenue},
		{ID: 32, Code: "4030", Name: "Financing Income", Category: ledger.CategoryRevenue, ParentID: &parentRevenue},
		{ID: 33, Code: "4040", Name: "Insurance Revenue", Category: ledger.CategoryRevenue, ParentID: &parentRevenue},
		{ID: 35, Code: "4060", Name: "Rental & Other Income", Category: ledger.CategoryRevenue, ParentID: &parentRevenue},
		{ID: 40, Code: "5010", Name: "Cost of Goods Sold (Vehicles)", Category: ledger.CategoryExpenses},
		{ID: 41, Code: "5050", Name: "Salaries and Wages", Category: ledger.CategoryExpenses},
		{ID: 42, Code: "5100", Name: "Rent Expense", Category: ledger.CategoryExpenses},
		{ID: 43, Code: "5110", Name: "Utilities Expense", Category: ledger.CategoryExpenses},
		{ID: 44, Code: "5200", Name: "Marketing and Advertising", Category: ledger.CategoryExpenses},
		{ID: 46, Code: "5400", Name: "Vehicle Repair Expense", Category: ledger.CategoryExpenses},
		{ID: 48, Code: "5600", Name: "Vehicle Insurance Expense", Category: ledger.CategoryExpenses},
		{ID: 49, Code: "5700", Name: "Vehicle Tracker Expense", Category: ledger.CategoryExpenses},
	}
}
