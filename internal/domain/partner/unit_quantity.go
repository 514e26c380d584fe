package partner

import "github.com/paperstock/backend/internal/domain/shared"

// UnitQuantity is a unit-of-measure definition (e.g. Ream, Bundle, Box)
// with a nominal base count. Reference data only; nothing is converted
// through it.
type UnitQuantity struct {
	shared.BaseEntity
	QuantityID   string `json:"quantityId"`
	QuantityName string `json:"quantityName"`
	Quantity     int    `json:"quantity"`
}

// NewUnitQuantity creates a new unit-of-measure record
func NewUnitQuantity(id, name string, quantity int) (*UnitQuantity, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Base quantity must be positive")
	}

	return &UnitQuantity{
		BaseEntity:   shared.NewBaseEntity(),
		QuantityID:   id,
		QuantityName: name,
		Quantity:     quantity,
	}, nil
}
