package inventory

import (
	"github.com/shopspring/decimal"
)

// TotalCost computes the vehicle's total acquisition cost in KES.
//
// Import: C&F base amount + clearing + repair + every yen line fee
// converted at the captured exchange rate (1 when unset). Local:
// purchase price + repair. The function is pure: it never mutates the
// vehicle, never fails, and absent components contribute zero, so
// repeated calls on the same snapshot always agree.
func (v *Vehicle) TotalCost() decimal.Decimal {
	total := decimal.Zero

	switch v.PurchaseType {
	case PurchaseTypeImport:
		c := v.Import
		if c == nil {
			return total
		}
		total = total.Add(c.TotalCNF.BaseAmount()).
			Add(c.ClearingCost.BaseAmount()).
			Add(c.RepairCost.BaseAmount())

		rate := c.ExchangeRate
		if rate.IsZero() {
			rate = decimal.NewFromInt(1)
		}
		for _, fee := range []decimal.Decimal{
			c.BiddingPrice, c.ProfitOnBidding, c.AuctionFee,
			c.TransportFee, c.InspectionFee, c.ExtraCharges,
			c.RoRoShipping, c.RoRoFreight, c.ContainerVanning,
			c.ContainerFreight, c.DHL,
		} {
			if !fee.IsZero() {
				total = total.Add(fee.Mul(rate))
			}
		}

	case PurchaseTypeLocal:
		c := v.Local
		if c == nil {
			return total
		}
		total = total.Add(c.PurchasePrice.BaseAmount()).
			Add(c.RepairCost.BaseAmount())
	}

	return total
}
