package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/shared"
)

// GormTradingPartnerRepository implements TradingPartnerRepository using GORM
type GormTradingPartnerRepository struct {
	db *gorm.DB
}

// NewGormTradingPartnerRepository creates a new GormTradingPartnerRepository
func NewGormTradingPartnerRepository(db *gorm.DB) *GormTradingPartnerRepository {
	return &GormTradingPartnerRepository{db: db}
}

// FindByID finds a partner by its kind-prefixed normalized id
func (r *GormTradingPartnerRepository) FindByID(ctx context.Context, id string) (*partner.TradingPartner, error) {
	var p partner.TradingPartner
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByKind lists all partners of one kind, ordered by name
func (r *GormTradingPartnerRepository) FindByKind(ctx context.Context, kind partner.Kind) ([]partner.TradingPartner, error) {
	var partners []partner.TradingPartner
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("name ASC").
		Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// FindByNormalizedName finds a partner of the given kind whose stored
// name matches after trimming and lowercasing. The comparison runs on
// the name column, not the id: the id strips interior whitespace too,
// so it is not a valid key for this lookup.
func (r *GormTradingPartnerRepository) FindByNormalizedName(ctx context.Context, kind partner.Kind, normalized string) (*partner.TradingPartner, error) {
	var p partner.TradingPartner
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND LOWER(TRIM(name)) = ?", kind, normalized).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new partner. A primary key conflict is an error,
// never an overwrite of the existing row.
func (r *GormTradingPartnerRepository) Create(ctx context.Context, p *partner.TradingPartner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Save updates an existing partner
func (r *GormTradingPartnerRepository) Save(ctx context.Context, p *partner.TradingPartner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Ensure GormTradingPartnerRepository implements TradingPartnerRepository
var _ partner.TradingPartnerRepository = (*GormTradingPartnerRepository)(nil)
