package partner

import (
	"context"

	"github.com/google/uuid"
)

// TradingPartnerRepository defines the interface for partner persistence
type TradingPartnerRepository interface {
	// FindByID finds a partner by its kind-prefixed normalized id
	FindByID(ctx context.Context, id string) (*TradingPartner, error)

	// FindByKind lists all partners of one kind, ordered by name
	FindByKind(ctx context.Context, kind Kind) ([]TradingPartner, error)

	// FindByNormalizedName finds a partner of the given kind whose name
	// matches after trimming and lowercasing; returns shared.ErrNotFound
	// when there is no collision
	FindByNormalizedName(ctx context.Context, kind Kind, normalized string) (*TradingPartner, error)

	// Create inserts a new partner; a primary key conflict is an error
	Create(ctx context.Context, p *TradingPartner) error

	// Save updates an existing partner
	Save(ctx context.Context, p *TradingPartner) error
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
}
