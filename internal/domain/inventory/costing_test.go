package inventory

import (
	"testing"

	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCost_Import(t *testing.T) {
	t.Run("sums C&F, clearing and repair base amounts", func(t *testing.T) {
		v, err := NewImportVehicle("Toyota", "Vitz", "SCP90-1234567", "beforward", ImportCosting{
			TotalCNF:     valueobject.NewCurrencyValue(decimal.NewFromInt(500000), valueobject.JPY, decimal.NewFromFloat(0.833334)),
			ClearingCost: valueobject.NewKESFromInt(45000),
		})
		require.NoError(t, err)
		assert.True(t, v.TotalCost().Equal(decimal.NewFromInt(461667)),
			"got %s", v.TotalCost())
	})

	t.Run("converts yen line fees at the captured rate", func(t *testing.T) {
		v, err := NewImportVehicle("Mazda", "Demio", "DJ3FS-7654321", "sbtjapan", ImportCosting{
			ExchangeRate: decimal.NewFromFloat(1.2),
			AuctionFee:   decimal.NewFromInt(20000),
			TransportFee: decimal.NewFromInt(15000),
			DHL:          decimal.NewFromInt(5000),
		})
		require.NoError(t, err)
		// (20000 + 15000 + 5000) * 1.2
		assert.True(t, v.TotalCost().Equal(decimal.NewFromInt(48000)))
	})

	t.Run("missing exchange rate defaults to one", func(t *testing.T) {
		v, err := NewImportVehicle("Nissan", "Note", "E12-1111111", "aajapan", ImportCosting{
			InspectionFee: decimal.NewFromInt(10000),
		})
		require.NoError(t, err)
		assert.True(t, v.TotalCost().Equal(decimal.NewFromInt(10000)))
	})

	t.Run("empty cost sheet totals zero", func(t *testing.T) {
		v, err := NewImportVehicle("Honda", "Fit", "GK3-2222222", "karmen", ImportCosting{})
		require.NoError(t, err)
		assert.True(t, v.TotalCost().IsZero())
	})

	t.Run("nil cost sheet totals zero", func(t *testing.T) {
		v, err := NewImportVehicle("Honda", "Fit", "GK3-3333333", "karmen", ImportCosting{})
		require.NoError(t, err)
		v.Import = nil
		assert.True(t, v.TotalCost().IsZero())
	})
}

func TestTotalCost_Local(t *testing.T) {
	v, err := NewLocalVehicle("Toyota", "Probox", "NCP160-4444444", "apexmotorsltd", LocalCosting{
		PurchasePrice: valueobject.NewKESFromInt(850000),
		RepairCost:    valueobject.NewKESFromInt(40000),
	})
	require.NoError(t, err)
	assert.True(t, v.TotalCost().Equal(decimal.NewFromInt(890000)))
}

func TestTotalCost_Idempotent(t *testing.T) {
	v, err := NewImportVehicle("Subaru", "Forester", "SJ5-5555555", "nafasinvestment", ImportCosting{
		TotalCNF:     valueobject.NewCurrencyValue(decimal.NewFromInt(900000), valueobject.JPY, decimal.NewFromFloat(1.1)),
		RepairCost:   valueobject.NewKESFromInt(30000),
		ExchangeRate: decimal.NewFromFloat(1.1),
		AuctionFee:   decimal.NewFromInt(18000),
	})
	require.NoError(t, err)

	first := v.TotalCost()
	for range 5 {
		assert.True(t, v.TotalCost().Equal(first))
	}
}

func TestMarkSold(t *testing.T) {
	newAvailable := func(t *testing.T) *Vehicle {
		v, err := NewLocalVehicle("Toyota", "Axio", "NZE161-6666666", "apexmotorsltd", LocalCosting{})
		require.NoError(t, err)
		return v
	}

	t.Run("available transitions to sold", func(t *testing.T) {
		v := newAvailable(t)
		require.NoError(t, v.MarkSold())
		assert.Equal(t, StatusSold, v.Status)
	})

	t.Run("sold is terminal", func(t *testing.T) {
		v := newAvailable(t)
		require.NoError(t, v.MarkSold())
		assert.Error(t, v.MarkSold())
	})

	t.Run("on-way cannot be sold", func(t *testing.T) {
		v := newAvailable(t)
		v.Status = StatusOnWay
		assert.Error(t, v.MarkSold())
	})
}

func TestUpdateCosting_VariantEnforcement(t *testing.T) {
	imp, err := NewImportVehicle("Toyota", "Vitz", "SCP90-7777777", "beforward", ImportCosting{})
	require.NoError(t, err)
	assert.Error(t, imp.UpdateLocalCosting(LocalCosting{}))
	assert.NoError(t, imp.UpdateImportCosting(ImportCosting{AuctionFee: decimal.NewFromInt(9000)}))

	loc, err := NewLocalVehicle("Toyota", "Passo", "KGC30-8888888", "apexmotorsltd", LocalCosting{})
	require.NoError(t, err)
	assert.Error(t, loc.UpdateImportCosting(ImportCosting{}))
	assert.NoError(t, loc.UpdateLocalCosting(LocalCosting{PurchasePrice: valueobject.NewKESFromInt(500000)}))
}
