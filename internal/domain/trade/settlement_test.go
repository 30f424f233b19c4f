package trade

import (
	"testing"
	"time"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleCosting(t *testing.T, costKES int64) *inventory.Vehicle {
	t.Helper()
	v, err := inventory.NewLocalVehicle("Toyota", "Harrier", "ZSU60-0000001", "apexmotorsltd", inventory.LocalCosting{
		PurchasePrice: valueobject.NewKESFromInt(costKES),
	})
	require.NoError(t, err)
	return v
}

func TestComputeSettlement(t *testing.T) {
	salePrice := valueobject.NewKESFromInt(2_000_000)
	none := AttachedProductQuote{}

	t.Run("plain deal", func(t *testing.T) {
		s := ComputeSettlement(vehicleCosting(t, 1_500_000), salePrice, none, none, false, valueobject.ZeroKES())
		assert.True(t, s.TotalInvoice.Equal(decimal.NewFromInt(2_000_000)))
		assert.True(t, s.VehicleCost.Equal(decimal.NewFromInt(1_500_000)))
		assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(500_000)))
	})

	t.Run("broker fee reduces net profit", func(t *testing.T) {
		s := ComputeSettlement(vehicleCosting(t, 1_500_000), salePrice, none, none, true, valueobject.NewKESFromInt(50_000))
		assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(450_000)))
	})

	t.Run("attached products add their price to the invoice and their margin to profit", func(t *testing.T) {
		insurance := AttachedProductQuote{
			Included:  true,
			Premium:   valueobject.NewKESFromInt(60_000),
			SalePrice: valueobject.NewKESFromInt(80_000),
		}
		tracker := AttachedProductQuote{
			Included:  true,
			Premium:   valueobject.NewKESFromInt(10_000),
			SalePrice: valueobject.NewKESFromInt(15_000),
		}
		s := ComputeSettlement(vehicleCosting(t, 1_500_000), salePrice, insurance, tracker, false, valueobject.ZeroKES())
		assert.True(t, s.TotalInvoice.Equal(decimal.NewFromInt(2_095_000)))
		assert.True(t, s.InsuranceProfit.Equal(decimal.NewFromInt(20_000)))
		assert.True(t, s.TrackerProfit.Equal(decimal.NewFromInt(5_000)))
		assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(525_000)))
	})

	t.Run("excluded products contribute nothing", func(t *testing.T) {
		insurance := AttachedProductQuote{
			Included:  false,
			Premium:   valueobject.NewKESFromInt(60_000),
			SalePrice: valueobject.NewKESFromInt(80_000),
		}
		s := ComputeSettlement(vehicleCosting(t, 1_500_000), salePrice, insurance, none, false, valueobject.ZeroKES())
		assert.True(t, s.TotalInvoice.Equal(decimal.NewFromInt(2_000_000)))
		assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(500_000)))
	})

	t.Run("pure with respect to repeated calls", func(t *testing.T) {
		v := vehicleCosting(t, 1_234_567)
		first := ComputeSettlement(v, salePrice, none, none, false, valueobject.ZeroKES())
		second := ComputeSettlement(v, salePrice, none, none, false, valueobject.ZeroKES())
		assert.Equal(t, first, second)
	})
}

func TestNewSale(t *testing.T) {
	vehicleID := uuid.New()
	customerID := uuid.New()
	price := valueobject.NewKESFromInt(2_000_000)
	invoice := decimal.NewFromInt(2_000_000)

	t.Run("creates sale with balance equal to invoice", func(t *testing.T) {
		s, err := NewSale(vehicleID, customerID, "Amina Odhiambo", time.Now(), price, SaleMethodCash, invoice)
		require.NoError(t, err)
		assert.True(t, s.Balance.Equal(invoice))
	})

	t.Run("rejects missing vehicle", func(t *testing.T) {
		_, err := NewSale(uuid.Nil, customerID, "Amina Odhiambo", time.Now(), price, SaleMethodCash, invoice)
		assert.Error(t, err)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := NewSale(vehicleID, uuid.Nil, "", time.Now(), price, SaleMethodCash, invoice)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewSale(vehicleID, customerID, "Amina Odhiambo", time.Now(), valueobject.ZeroKES(), SaleMethodCash, invoice)
		assert.Error(t, err)
	})
}

func TestSale_AddPayment(t *testing.T) {
	s, err := NewSale(uuid.New(), uuid.New(), "Amina Odhiambo", time.Now(),
		valueobject.NewKESFromInt(2_000_000), SaleMethodHirePurchase, decimal.NewFromInt(2_000_000))
	require.NoError(t, err)

	s.AddPayment(time.Now(), valueobject.NewKESFromInt(500_000), PaymentMPesa, "Initial down payment")
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(1_500_000)))

	s.AddPayment(time.Now(), valueobject.NewKESFromInt(250_000), PaymentBankTransfer, "")
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(1_250_000)))
	assert.Len(t, s.Payments, 2)
}

func TestNewAttachedProductSale_ProfitInvariant(t *testing.T) {
	p := NewAttachedProductSale("jubilee", "jubilee_default", "POL-123",
		valueobject.NewCurrencyValue(decimal.NewFromInt(500), valueobject.USD, decimal.NewFromInt(130)),
		valueobject.NewKESFromInt(80_000))
	// 80000 - 500*130
	assert.True(t, p.Profit.Equal(decimal.NewFromInt(15_000)))
}

func TestSale_PendingInstallments(t *testing.T) {
	s, err := NewSale(uuid.New(), uuid.New(), "Amina Odhiambo", time.Now(),
		valueobject.NewKESFromInt(900_000), SaleMethodHirePurchase, decimal.NewFromInt(900_000))
	require.NoError(t, err)

	due := time.Now().AddDate(0, 1, 0)
	s.SetInstallmentPlan(InstallmentPlan{
		{Number: 1, DueDate: due, AmountDue: decimal.NewFromInt(300_000), Status: InstallmentPaid},
		{Number: 2, DueDate: due.AddDate(0, 1, 0), AmountDue: decimal.NewFromInt(300_000), Status: InstallmentPending},
		{Number: 3, DueDate: due.AddDate(0, 2, 0), AmountDue: decimal.NewFromInt(300_000), Status: InstallmentPartiallyPaid},
	})

	pending := s.PendingInstallments()
	require.Len(t, pending, 2)
	assert.Equal(t, 2, pending[0].Number)
	assert.Equal(t, 3, pending[1].Number)
}
