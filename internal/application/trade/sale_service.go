package trade

import (
	"context"
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/dealerops/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleService closes vehicle deals and records payments against them
type SaleService struct {
	saleRepo     trade.SaleRepository
	vehicleRepo  inventory.VehicleRepository
	customerRepo partner.CustomerRepository
	scope        TransactionScope
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo trade.SaleRepository,
	vehicleRepo inventory.VehicleRepository,
	customerRepo partner.CustomerRepository,
	scope TransactionScope,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		scope:        scope,
	}
}

// Quote previews the settlement for a deal without touching anything
func (s *SaleService) Quote(ctx context.Context, req QuoteRequest) (*SettlementResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	salePrice := toCurrencyValue(req.SalePrice)
	// Broker participation keys on the assigned broker, exactly as in
	// Finalize; a stray fee without a broker does not count.
	brokerFee := valueobject.ZeroKES()
	brokerAssigned := req.BrokerID != ""
	if brokerAssigned && req.BrokerFee != nil {
		brokerFee = toCurrencyValue(*req.BrokerFee)
	}

	settlement := trade.ComputeSettlement(vehicle, salePrice,
		toQuote(req.Insurance), toQuote(req.Tracker), brokerAssigned, brokerFee)
	response := ToSettlementResponse(settlement)
	return &response, nil
}

// Finalize closes a deal: it validates the vehicle and buyer, computes
// the settlement, marks the vehicle sold and writes the sale with any
// down payment as its first recorded payment. Everything commits as
// one transaction.
func (s *SaleService) Finalize(ctx context.Context, req FinalizeSaleRequest) (*SaleResponse, error) {
	salePrice := toCurrencyValue(req.SalePrice)
	if !salePrice.BaseAmount().IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Sale price must be greater than zero")
	}
	if req.CustomerID == nil && (req.NewCustomer == nil || strings.TrimSpace(req.NewCustomer.Name) == "") {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "A customer is required to finalize a sale")
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	var created *trade.Sale
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		vehicle, err := repos.VehicleRepo().FindByID(ctx, req.VehicleID)
		if err != nil {
			return err
		}
		if !vehicle.IsAvailable() {
			return shared.NewDomainError("VALIDATION_ERROR", "Vehicle is not available for sale")
		}

		customerID, customerName, err := s.resolveCustomer(ctx, repos.CustomerRepo(), req)
		if err != nil {
			return err
		}

		brokerFee := valueobject.ZeroKES()
		brokerAssigned := req.BrokerID != ""
		if brokerAssigned && req.BrokerFee != nil {
			brokerFee = toCurrencyValue(*req.BrokerFee)
		}

		insurance := toQuote(req.Insurance)
		tracker := toQuote(req.Tracker)
		settlement := trade.ComputeSettlement(vehicle, salePrice, insurance, tracker, brokerAssigned, brokerFee)

		sale, err := trade.NewSale(vehicle.ID, customerID, customerName, saleDate,
			salePrice, trade.SaleMethod(req.Method), settlement.TotalInvoice)
		if err != nil {
			return err
		}

		if brokerAssigned {
			sale.AssignBroker(req.BrokerID, brokerFee)
		}
		if req.Insurance != nil {
			sale.AttachInsurance(toAttachedProduct(*req.Insurance))
		}
		if req.Tracker != nil {
			sale.AttachTracker(toAttachedProduct(*req.Tracker))
		}

		if req.DownPayment != nil {
			down := toCurrencyValue(*req.DownPayment)
			if down.BaseAmount().IsPositive() {
				method := trade.PaymentMethod(req.DownPaymentMethod)
				if method == "" {
					method = trade.PaymentCash
				}
				sale.AddPayment(saleDate, down, method, "Down payment")
			}
		}

		if len(req.Installments) > 0 {
			plan := make(trade.InstallmentPlan, len(req.Installments))
			for i, inst := range req.Installments {
				plan[i] = trade.Installment{
					Number:    inst.Number,
					DueDate:   inst.DueDate,
					AmountDue: parseDecimal(inst.AmountDue, decimal.Zero),
					Status:    trade.InstallmentPending,
				}
			}
			sale.SetInstallmentPlan(plan)
		}

		if err := vehicle.MarkSold(); err != nil {
			return err
		}
		if err := repos.VehicleRepo().Save(ctx, vehicle); err != nil {
			return err
		}
		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}

		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(created)
	return &response, nil
}

// AddPayment records a received payment and returns the updated sale
func (s *SaleService) AddPayment(ctx context.Context, saleID uuid.UUID, req AddPaymentRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	amount := toCurrencyValue(req.Amount)
	if !amount.BaseAmount().IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be greater than zero")
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	sale.AddPayment(date, amount, trade.PaymentMethod(req.Method), req.Notes)

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves one sale with its payments
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// List lists all sales, newest first
func (s *SaleService) List(ctx context.Context) ([]SaleResponse, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSaleResponses(sales), nil
}

func (s *SaleService) resolveCustomer(ctx context.Context, customers partner.CustomerRepository, req FinalizeSaleRequest) (uuid.UUID, string, error) {
	if req.CustomerID != nil {
		c, err := customers.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return uuid.Nil, "", err
		}
		return c.ID, c.Name, nil
	}

	c, err := partner.NewCustomer(req.NewCustomer.Name, req.NewCustomer.Phone)
	if err != nil {
		return uuid.Nil, "", err
	}
	c.NationalID = req.NewCustomer.NationalID
	if err := customers.Save(ctx, c); err != nil {
		return uuid.Nil, "", err
	}
	return c.ID, c.Name, nil
}

func toQuote(req *AttachedProductRequest) trade.AttachedProductQuote {
	if req == nil {
		return trade.AttachedProductQuote{}
	}
	return trade.AttachedProductQuote{
		Included:  true,
		Premium:   toCurrencyValue(req.Premium),
		SalePrice: toCurrencyValue(req.SalePrice),
	}
}

func toAttachedProduct(req AttachedProductRequest) trade.AttachedProductSale {
	return trade.NewAttachedProductSale(req.CompanyID, req.SalespersonID, req.Reference,
		toCurrencyValue(req.Premium), toCurrencyValue(req.SalePrice))
}

func toCurrencyValue(req CurrencyValueRequest) valueobject.CurrencyValue {
	v := valueobject.ZeroKES()
	if req.Currency != "" {
		v = v.WithCurrency(valueobject.Currency(req.Currency))
	}
	if req.Rate != "" {
		v = v.WithRate(parseDecimal(req.Rate, decimal.NewFromInt(1)))
	}
	return v.WithAmount(req.Amount)
}

func parseDecimal(raw string, fallback decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	return d
}
