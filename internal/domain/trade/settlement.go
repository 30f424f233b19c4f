package trade

import (
	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// AttachedProductQuote is the pre-finalization view of an attached
// product: whether it is part of the deal, what it costs the
// dealership and what the customer pays for it.
type AttachedProductQuote struct {
	Included  bool
	Premium   valueobject.CurrencyValue
	SalePrice valueobject.CurrencyValue
}

// Profit returns the KES margin, zero when the product is not included
func (q AttachedProductQuote) Profit() decimal.Decimal {
	if !q.Included {
		return decimal.Zero
	}
	return q.SalePrice.BaseAmount().Sub(q.Premium.BaseAmount())
}

// Settlement is the computed financial outcome of one vehicle deal
type Settlement struct {
	TotalInvoice    decimal.Decimal `json:"total_invoice"`
	VehicleCost     decimal.Decimal `json:"vehicle_cost"`
	InsuranceProfit decimal.Decimal `json:"insurance_profit"`
	TrackerProfit   decimal.Decimal `json:"tracker_profit"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

// ComputeSettlement derives the invoice total, cost basis and net
// profit for a deal. It is pure: same inputs, same figures.
//
// Invoice = vehicle price + each included attached product's price.
// Net profit = (vehicle price - acquisition cost) + attached margins,
// less the broker fee when a broker brought the deal.
func ComputeSettlement(vehicle *inventory.Vehicle, salePrice valueobject.CurrencyValue,
	insurance, tracker AttachedProductQuote, brokerAssigned bool, brokerFee valueobject.CurrencyValue) Settlement {

	vehicleCost := vehicle.TotalCost()

	totalInvoice := salePrice.BaseAmount()
	if insurance.Included {
		totalInvoice = totalInvoice.Add(insurance.SalePrice.BaseAmount())
	}
	if tracker.Included {
		totalInvoice = totalInvoice.Add(tracker.SalePrice.BaseAmount())
	}

	insuranceProfit := insurance.Profit()
	trackerProfit := tracker.Profit()

	netProfit := salePrice.BaseAmount().Sub(vehicleCost).
		Add(insuranceProfit).
		Add(trackerProfit)
	if brokerAssigned {
		netProfit = netProfit.Sub(brokerFee.BaseAmount())
	}

	return Settlement{
		TotalInvoice:    totalInvoice,
		VehicleCost:     vehicleCost,
		InsuranceProfit: insuranceProfit,
		TrackerProfit:   trackerProfit,
		NetProfit:       netProfit,
	}
}
