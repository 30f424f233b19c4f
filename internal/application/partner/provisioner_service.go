package partner

import (
	"context"

	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/shared"
)

// RootAccounts maps each partner kind to the id of the payable root
// account its sub-accounts nest under. Seeded by migration and carried
// in configuration.
type RootAccounts map[partner.Kind]int

// DefaultRootAccounts matches the seeded chart of accounts
func DefaultRootAccounts() RootAccounts {
	return RootAccounts{
		partner.KindSupplier:        11,
		partner.KindClearingAgent:   14,
		partner.KindTrackingCompany: 15,
		partner.KindInsurer:         16,
		partner.KindBroker:          17,
	}
}

// ProvisionerService creates trading partners. Each new partner gets a
// payable sub-account allocated under its kind's root account; the two
// writes commit as one transaction.
type ProvisionerService struct {
	partnerRepo  partner.TradingPartnerRepository
	accountRepo  ledger.AccountRepository
	scope        TransactionScope
	rootAccounts RootAccounts
}

// NewProvisionerService creates a new ProvisionerService
func NewProvisionerService(
	partnerRepo partner.TradingPartnerRepository,
	accountRepo ledger.AccountRepository,
	scope TransactionScope,
	rootAccounts RootAccounts,
) *ProvisionerService {
	if len(rootAccounts) == 0 {
		rootAccounts = DefaultRootAccounts()
	}
	return &ProvisionerService{
		partnerRepo:  partnerRepo,
		accountRepo:  accountRepo,
		scope:        scope,
		rootAccounts: rootAccounts,
	}
}

// Provision validates the request, rejects duplicates by normalized
// name, then creates the payable sub-account and the partner record
// atomically. On a duplicate it returns partner.DuplicateError carrying
// the existing record and writes nothing.
func (s *ProvisionerService) Provision(ctx context.Context, req ProvisionPartnerRequest) (*PartnerResponse, error) {
	kind := partner.Kind(req.Kind)
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown partner kind")
	}

	normalized := partner.NormalizeName(req.Name)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name is required")
	}

	existing, err := s.partnerRepo.FindByNormalizedName(ctx, kind, normalized)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, partner.NewDuplicateError(existing)
	}

	rootID, ok := s.rootAccounts[kind]
	if !ok {
		return nil, shared.NewDomainError("NO_ROOT_ACCOUNT", "No payable root account configured for kind "+req.Kind)
	}

	var created *partner.TradingPartner
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		accounts := repos.AccountRepo()

		root, err := accounts.FindByID(ctx, rootID)
		if err != nil {
			return err
		}
		count, err := accounts.CountByParent(ctx, rootID)
		if err != nil {
			return err
		}
		code := ledger.SubAccountCode(root.Code, int(count)+1)

		account, err := ledger.NewSubAccount(code, "A/P - "+req.Name, root.Category, root)
		if err != nil {
			return err
		}
		if err := accounts.Save(ctx, account); err != nil {
			return err
		}

		p, err := partner.NewTradingPartner(kind, req.Name, code, partner.ContactInfo{
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
			WhatsApp:      req.WhatsApp,
			Email:         req.Email,
			Address:       req.Address,
			TaxPIN:        req.TaxPIN,
		})
		if err != nil {
			return err
		}
		if err := repos.PartnerRepo().Create(ctx, p); err != nil {
			return err
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToPartnerResponse(created)
	return &response, nil
}

// GetByID retrieves one partner
func (s *ProvisionerService) GetByID(ctx context.Context, id string) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPartnerResponse(p)
	return &response, nil
}

// ListByKind lists all partners of one kind
func (s *ProvisionerService) ListByKind(ctx context.Context, kind string) ([]PartnerResponse, error) {
	k := partner.Kind(kind)
	if !k.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown partner kind")
	}
	partners, err := s.partnerRepo.FindByKind(ctx, k)
	if err != nil {
		return nil, err
	}
	return ToPartnerResponses(partners), nil
}

// AddSalesperson adds a named contact to an existing partner
func (s *ProvisionerService) AddSalesperson(ctx context.Context, partnerID string, req AddSalespersonRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if err := p.AddSalesperson(req.Name, req.SubPrefix); err != nil {
		return nil, err
	}
	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	response := ToPartnerResponse(p)
	return &response, nil
}
