package trade

import (
	"context"
	"testing"
	"time"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/dealerops/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleRepository is a mock implementation of SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context) ([]trade.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, s *trade.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of inventory.VehicleRepository
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

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type fixture struct {
	saleRepo     *MockSaleRepository
	vehicleRepo  *MockVehicleRepository
	customerRepo *MockCustomerRepository
	svc          *SaleService
}

func newFixture() *fixture {
	saleRepo := new(MockSaleRepository)
	vehicleRepo := new(MockVehicleRepository)
	customerRepo := new(MockCustomerRepository)
	scope := NewNoOpTransactionScope(saleRepo, vehicleRepo, customerRepo)
	return &fixture{
		saleRepo:     saleRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		svc:          NewSaleService(saleRepo, vehicleRepo, customerRepo, scope),
	}
}

func stockVehicle(t *testing.T, costKES int64) *inventory.Vehicle {
	t.Helper()
	v, err := inventory.NewLocalVehicle("Toyota", "Harrier", "ZSU60-0001234", "apexmotorsltd", inventory.LocalCosting{
		PurchasePrice: valueobject.NewKESFromInt(costKES),
	})
	require.NoError(t, err)
	return v
}

func existingCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer("Amina Odhiambo", "+254711000111")
	require.NoError(t, err)
	return c
}

func TestSaleService_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("plain deal", func(t *testing.T) {
		f := newFixture()
		v := stockVehicle(t, 1_500_000)
		f.vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)

		resp, err := f.svc.Quote(ctx, QuoteRequest{
			VehicleID: v.ID,
			SalePrice: CurrencyValueRequest{Amount: "2000000"},
		})
		require.NoError(t, err)
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(500_000)))
		assert.True(t, resp.TotalInvoice.Equal(decimal.NewFromInt(2_000_000)))
	})

	t.Run("broker fee counts only with an assigned broker", func(t *testing.T) {
		f := newFixture()
		v := stockVehicle(t, 1_500_000)
		f.vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)

		fee := CurrencyValueRequest{Amount: "50000"}

		// A fee without a broker is ignored, matching Finalize.
		resp, err := f.svc.Quote(ctx, QuoteRequest{
			VehicleID: v.ID,
			SalePrice: CurrencyValueRequest{Amount: "2000000"},
			BrokerFee: &fee,
		})
		require.NoError(t, err)
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(500_000)))

		resp, err = f.svc.Quote(ctx, QuoteRequest{
			VehicleID: v.ID,
			SalePrice: CurrencyValueRequest{Amount: "2000000"},
			BrokerID:  "broker-apex",
			BrokerFee: &fee,
		})
		require.NoError(t, err)
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(450_000)))
	})
}

func TestSaleService_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("cash sale with existing customer", func(t *testing.T) {
		f := newFixture()
		v := stockVehicle(t, 1_500_000)
		c := existingCustomer(t)

		f.vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)
		f.customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		f.vehicleRepo.On("Save", ctx, v).Return(nil)
		f.saleRepo.On("Save", ctx, mock.AnythingOfType("*trade.Sale")).Return(nil)

		resp, err := f.svc.Finalize(ctx, FinalizeSaleRequest{
			VehicleID:  v.ID,
			CustomerID: &c.ID,
			SalePrice:  CurrencyValueRequest{Amount: "2000000"},
			Method:     "Cash",
		})
		require.NoError(t, err)
		assert.Equal(t, inventory.StatusSold, v.Status)
		assert.Equal(t, "Amina Odhiambo", resp.CustomerName)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(2_000_000)))
	})

	t.Run("down payment becomes the first recorded payment", func(t *testing.T) {
		f := newFixture()
		v := stockVehicle(t, 1_500_000)
		c := existingCustomer(t)

		f.vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)
		f.customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		f.vehicleRepo.On("Save", ctx, v).Return(nil)
		f.saleRepo.On("Save", ctx, mock.AnythingOfType("*trade.Sale")).Return(nil)

		resp, err := f.svc.Finalize(ctx, FinalizeSaleRequest{
			VehicleID:         v.ID,
			CustomerID:        &c.ID,
			SalePrice:         CurrencyValueRequest{Amount: "2000000"},
			Method:            "Hire Purchase",
			DownPayment:       &CurrencyValueRequest{Amount: "500000"},
			DownPaymentMethod: "M-Pesa",
		})
		require.NoError(t, err)
		require.Len(t, resp.Payments, 1)
		assert.True(t, resp.Payments[0].Amount.Equal(decimal.NewFromInt(500_000)))
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(1_500_000)))
	})

	t.Run("new customer created inline", func(t *testing.T) {
		f := newFixture()
		v := stockVehicle(t, 1_500_000)

		f.vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)
		f.customerRepo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)
		f.vehicleRepo.On("Save", ctx, v).Return(nil)
		f.saleRepo.On("Save", ctx, mock.AnythingOfType("*trade.Sale")).Return(nil)

		resp, err := f.svc.Finalize(ctx, FinalizeSaleRequest{
			VehicleID:   v.ID,
			NewCustomer: &NewCustomerRequest{Name: "Peter Kamau", Phone: "+254722000222"},
			SalePrice:   CurrencyValueRequest{Amount: "1800000"},
			Method:      "Cash",
		})
		require.NoError(t, err)
		assert.Equal(t, "Peter Kamau", resp.CustomerName)
		f.customerRepo.AssertExpectations(t)
	})

	t.Run("rejects zero sale price without touching anything", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Finalize(ctx, FinalizeSaleRequest{
			VehicleID:   uuid.New(),
			NewCustomer: &NewCustomerRequest{Name: "Peter Kamau"},
			SalePrice:   CurrencyValueRequest{Amount: "not a number"},
			Method:      "Cash",
		})
		require.Error(t, err)
		f.vehicleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Finalize(ctx, FinalizeSaleRequest{
			VehicleID: uuid.New(),
			SalePrice: CurrencyValueRequest{Amount: "2000000"},
			Method:    "Cash",
		})
		assert.Error(t, err)
	})

	t.Run("rejects a vehicle that is not available", func(t *testing.T) {
		f := newFixture()
		v := stockVehicle(t, 1_500_000)
		require.NoError(t, v.MarkSold())
		c := existingCustomer(t)

		f.vehicleRepo.On("FindByID", ctx, v.ID).Return(v, nil)

		_, err := f.svc.Finalize(ctx, FinalizeSaleRequest{
			VehicleID:  v.ID,
			CustomerID: &c.ID,
			SalePrice:  CurrencyValueRequest{Amount: "2000000"},
			Method:     "Cash",
		})
		require.Error(t, err)
		f.saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSaleService_AddPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	sale, err := trade.NewSale(uuid.New(), uuid.New(), "Amina Odhiambo", time.Now(),
		valueobject.NewKESFromInt(2_000_000), trade.SaleMethodHirePurchase, decimal.NewFromInt(2_000_000))
	require.NoError(t, err)

	f.saleRepo.On("FindByID", ctx, sale.ID).Return(sale, nil)
	f.saleRepo.On("Save", ctx, sale).Return(nil)

	resp, err := f.svc.AddPayment(ctx, sale.ID, AddPaymentRequest{
		Amount: CurrencyValueRequest{Amount: "250000"},
		Method: "Bank Transfer",
	})
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(1_750_000)))

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := f.svc.AddPayment(ctx, sale.ID, AddPaymentRequest{
			Amount: CurrencyValueRequest{Amount: "0"},
			Method: "Cash",
		})
		assert.Error(t, err)
	})
}

func TestSaleService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := uuid.New()

	f.saleRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := f.svc.GetByID(ctx, id)
	assert.Equal(t, shared.ErrNotFound, err)
}
