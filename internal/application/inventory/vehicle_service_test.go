package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVehicleRepository is a mock implementation of VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAll(ctx context.Context) ([]inventory.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByStatus(ctx context.Context, status inventory.VehicleStatus) ([]inventory.Vehicle, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, v *inventory.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func TestVehicleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("import vehicle with cost sheet", func(t *testing.T) {
		repo := new(MockVehicleRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*inventory.Vehicle")).Return(nil)

		resp, err := NewVehicleService(repo).Create(ctx, CreateVehicleRequest{
			PurchaseType:  "import",
			SupplierID:    "beforward",
			Make:          "Toyota",
			Model:         "Harrier",
			ChassisNumber: "ZSU60-0001234",
			Import: &ImportCostingRequest{
				TotalCNF:     CurrencyValueRequest{Amount: "¥500,000", Currency: "JPY", Rate: "0.833334"},
				ClearingCost: CurrencyValueRequest{Amount: "45000"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "import", resp.PurchaseType)
		assert.Equal(t, "Available", resp.Status)
		// 500000 * 0.833334 + 45000
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(461667)))
		repo.AssertExpectations(t)
	})

	t.Run("local vehicle", func(t *testing.T) {
		repo := new(MockVehicleRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*inventory.Vehicle")).Return(nil)

		resp, err := NewVehicleService(repo).Create(ctx, CreateVehicleRequest{
			PurchaseType:  "local",
			Make:          "Mazda",
			Model:         "Demio",
			ChassisNumber: "DJ3FS-100200",
			Local: &LocalCostingRequest{
				PurchasePrice: CurrencyValueRequest{Amount: "850000"},
				RepairCost:    CurrencyValueRequest{Amount: "40000"},
			},
		})
		require.NoError(t, err)
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(890000)))
	})

	t.Run("rejects missing chassis number", func(t *testing.T) {
		repo := new(MockVehicleRepository)

		_, err := NewVehicleService(repo).Create(ctx, CreateVehicleRequest{
			PurchaseType: "local",
			Make:         "Mazda",
			Model:        "Demio",
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestVehicleService_SetShipment(t *testing.T) {
	ctx := context.Background()

	v, err := inventory.NewImportVehicle("Toyota", "Harrier", "ZSU60-0001234", "beforward", inventory.ImportCosting{})
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	repo.On("FindByID", ctx, v.ID).Return(v, nil)
	repo.On("Save", ctx, v).Return(nil)

	eta := time.Now().AddDate(0, 0, 14)
	resp, err := NewVehicleService(repo).SetShipment(ctx, v.ID, SetShipmentRequest{
		ShipmentType:    "RORO",
		Vessel:          "Morning Miracle",
		ETA:             &eta,
		ClearingAgentID: "clearing_agent-fastlaneclearing",
	})
	require.NoError(t, err)
	assert.Equal(t, "On Way", resp.Status)
	assert.NotNil(t, resp.ETA)
}

func TestVehicleService_UpdateCosting(t *testing.T) {
	ctx := context.Background()

	t.Run("local costing on an import unit fails", func(t *testing.T) {
		v, err := inventory.NewImportVehicle("Toyota", "Harrier", "ZSU60-0001234", "beforward", inventory.ImportCosting{})
		require.NoError(t, err)

		repo := new(MockVehicleRepository)
		repo.On("FindByID", ctx, v.ID).Return(v, nil)

		_, err = NewVehicleService(repo).UpdateLocalCosting(ctx, v.ID, LocalCostingRequest{})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("replaces the import sheet", func(t *testing.T) {
		v, err := inventory.NewImportVehicle("Toyota", "Harrier", "ZSU60-0001234", "beforward", inventory.ImportCosting{})
		require.NoError(t, err)

		repo := new(MockVehicleRepository)
		repo.On("FindByID", ctx, v.ID).Return(v, nil)
		repo.On("Save", ctx, v).Return(nil)

		resp, err := NewVehicleService(repo).UpdateImportCosting(ctx, v.ID, ImportCostingRequest{
			ExchangeRate: "1.2",
			AuctionFee:   "40000",
		})
		require.NoError(t, err)
		// 40000 yen at 1.2
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(48000)))
	})
}

func TestVehicleService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := new(MockVehicleRepository)
	repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := NewVehicleService(repo).GetByID(ctx, id)
	assert.Equal(t, shared.ErrNotFound, err)
}
