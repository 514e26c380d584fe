package partner

import (
	"context"
	"errors"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
)

// ModuleQuantities is the audit module name for unit-of-measure mutations
const ModuleQuantities = "Quantity Master"

// QuantityService handles unit-of-measure operations
type QuantityService struct {
	quantityRepo partner.UnitQuantityRepository
	recorder     *appaudit.Recorder
}

// NewQuantityService creates a new unit-of-measure service
func NewQuantityService(quantityRepo partner.UnitQuantityRepository, recorder *appaudit.Recorder) *QuantityService {
	return &QuantityService{quantityRepo: quantityRepo, recorder: recorder}
}

// Create adds a new unit-of-measure record
func (s *QuantityService) Create(ctx context.Context, actor appaudit.Actor, req CreateQuantityRequest) (*QuantityResponse, error) {
	quantity, err := partner.NewUnitQuantity(req.QuantityID, req.QuantityName, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.quantityRepo.Append(ctx, quantity); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Quantity with this ID already exists")
		}
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleQuantities, quantity.QuantityID)
	return toQuantityResponse(quantity), nil
}

// Get returns a single unit of measure by id
func (s *QuantityService) Get(ctx context.Context, quantityID string) (*QuantityResponse, error) {
	quantity, err := s.quantityRepo.FindByID(ctx, quantityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Quantity not found")
		}
		return nil, err
	}
	return toQuantityResponse(quantity), nil
}

// List returns all units of measure in insertion order
func (s *QuantityService) List(ctx context.Context) ([]QuantityResponse, error) {
	quantities, err := s.quantityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]QuantityResponse, 0, len(quantities))
	for i := range quantities {
		out = append(out, *toQuantityResponse(&quantities[i]))
	}
	return out, nil
}
