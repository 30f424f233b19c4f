package partner

import (
	"context"

	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerService handles customer records
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	c, err := partner.NewCustomer(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	c.Email = req.Email
	c.NationalID = req.NationalID
	c.TaxPIN = req.TaxPIN
	c.Address = req.Address

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(c)
	return &response, nil
}

// GetByID retrieves one customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(c)
	return &response, nil
}

// List lists all customers
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}
