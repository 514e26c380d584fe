package partner

import (
	"context"
	"errors"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
)

// ModuleVendors is the audit module name for vendor master mutations
const ModuleVendors = "Vendor Master"

// VendorService handles vendor master operations
type VendorService struct {
	vendorRepo partner.VendorRepository
	recorder   *appaudit.Recorder
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo partner.VendorRepository, recorder *appaudit.Recorder) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, recorder: recorder}
}

// Create adds a new vendor to the vendor master
func (s *VendorService) Create(ctx context.Context, actor appaudit.Actor, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := partner.NewVendor(req.VendorCode, req.VendorName, req.VendorAddress, req.VendorContact, req.MaterialType)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Append(ctx, vendor); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Vendor with this code already exists")
		}
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleVendors, vendor.VendorCode)
	return toVendorResponse(vendor), nil
}

// Update replaces the descriptive fields of an existing vendor
func (s *VendorService) Update(ctx context.Context, actor appaudit.Actor, vendorCode string, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByCode(ctx, vendorCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}

	if err := vendor.UpdateDetails(req.VendorName, req.VendorAddress, req.VendorContact, req.MaterialType); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionUpdate, ModuleVendors, vendor.VendorCode)
	return toVendorResponse(vendor), nil
}

// Get returns a single vendor by code
func (s *VendorService) Get(ctx context.Context, vendorCode string) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByCode(ctx, vendorCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List returns all vendors in insertion order
func (s *VendorService) List(ctx context.Context) ([]VendorResponse, error) {
	vendors, err := s.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		out = append(out, *toVendorResponse(&vendors[i]))
	}
	return out, nil
}
