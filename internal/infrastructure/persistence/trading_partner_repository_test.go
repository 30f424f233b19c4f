package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apppartner "github.com/dealerops/backend/internal/application/partner"
	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPartnerTestDB opens a throwaway sqlite database with the payable
// roots the provisioner allocates under.
func newPartnerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&ledger.Account{}, &partner.TradingPartner{}))

	roots := []ledger.Account{
		{ID: 11, Code: "2011", Name: "A/P - Suppliers", Category: ledger.CategoryLiabilities},
		{ID: 14, Code: "2012", Name: "A/P - Clearing Agents", Category: ledger.CategoryLiabilities},
		{ID: 17, Code: "2015", Name: "A/P - Brokers", Category: ledger.CategoryLiabilities},
	}
	require.NoError(t, db.Create(&roots).Error)
	return db
}

func newDBProvisioner(db *gorm.DB) *apppartner.ProvisionerService {
	return apppartner.NewProvisionerService(
		NewGormTradingPartnerRepository(db),
		NewGormAccountRepository(db),
		NewGormPartnerTransactionScope(db),
		nil,
	)
}

func TestGormTradingPartnerRepository_FindByNormalizedName(t *testing.T) {
	ctx := context.Background()
	db := newPartnerTestDB(t)
	repo := NewGormTradingPartnerRepository(db)

	p, err := partner.NewTradingPartner(
		partner.KindClearingAgent, "FastLane Clearing", "2012-01", partner.ContactInfo{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	t.Run("matches on trimmed lowercased name", func(t *testing.T) {
		found, err := repo.FindByNormalizedName(ctx, partner.KindClearingAgent, "fastlane clearing")
		require.NoError(t, err)
		assert.Equal(t, p.ID, found.ID)
	})

	t.Run("other kind does not match", func(t *testing.T) {
		_, err := repo.FindByNormalizedName(ctx, partner.KindSupplier, "fastlane clearing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		_, err := repo.FindByNormalizedName(ctx, partner.KindClearingAgent, "someone else")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTradingPartnerRepository_CreateRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	db := newPartnerTestDB(t)
	repo := NewGormTradingPartnerRepository(db)

	first, err := partner.NewTradingPartner(
		partner.KindSupplier, "Be Forward", "2011-01", partner.ContactInfo{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := partner.NewTradingPartner(
		partner.KindSupplier, "BE FORWARD", "2011-02", partner.ContactInfo{})
	require.NoError(t, err)
	assert.Error(t, repo.Create(ctx, second))

	kept, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Be Forward", kept.Name)
	assert.Equal(t, "2011-01", kept.APAccountCode)
}

func TestProvisionerService_DuplicateAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	db := newPartnerTestDB(t)
	service := newDBProvisioner(db)

	first, err := service.Provision(ctx, apppartner.ProvisionPartnerRequest{
		Kind: "clearing_agent",
		Name: "FastLane Clearing",
	})
	require.NoError(t, err)
	assert.Equal(t, "2012-01", first.APAccountCode)

	// The multi-word rename variant must collide, and nothing may be
	// written: no second partner row and no orphaned sub-account.
	_, err = service.Provision(ctx, apppartner.ProvisionPartnerRequest{
		Kind: "clearing_agent",
		Name: "  fastlane CLEARING ",
	})
	require.Error(t, err)

	var dup *partner.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, first.ID, dup.Existing.ID)

	partners, err := NewGormTradingPartnerRepository(db).FindByKind(ctx, partner.KindClearingAgent)
	require.NoError(t, err)
	assert.Len(t, partners, 1)
	assert.Equal(t, "FastLane Clearing", partners[0].Name)

	subAccounts, err := NewGormAccountRepository(db).CountByParent(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, int64(1), subAccounts)
}

func TestProvisionerService_SameNameDifferentKinds(t *testing.T) {
	ctx := context.Background()
	db := newPartnerTestDB(t)
	service := newDBProvisioner(db)

	asSupplier, err := service.Provision(ctx, apppartner.ProvisionPartnerRequest{
		Kind: "supplier",
		Name: "Apex",
	})
	require.NoError(t, err)

	asBroker, err := service.Provision(ctx, apppartner.ProvisionPartnerRequest{
		Kind: "broker",
		Name: "Apex",
	})
	require.NoError(t, err)

	assert.NotEqual(t, asSupplier.ID, asBroker.ID)
	assert.Equal(t, "2011-01", asSupplier.APAccountCode)
	assert.Equal(t, "2015-01", asBroker.APAccountCode)
}
