package partner

import "github.com/paperstock/backend/internal/domain/shared"

// Vendor represents a supplier in the vendor master.
// Static reference data; documents refer to vendors by code.
type Vendor struct {
	shared.BaseEntity
	VendorCode    string `json:"vendorCode"`
	VendorName    string `json:"vendorName"`
	VendorAddress string `json:"vendorAddress"`
	VendorContact string `json:"vendorContact"`
	MaterialType  string `json:"materialType"`
}

// NewVendor creates a new vendor master record
func NewVendor(vendorCode, vendorName, address, contact, materialType string) (*Vendor, error) {
	if vendorCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor code cannot be empty")
	}
	if vendorName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor name cannot be empty")
	}

	return &Vendor{
		BaseEntity:    shared.NewBaseEntity(),
		VendorCode:    vendorCode,
		VendorName:    vendorName,
		VendorAddress: address,
		VendorContact: contact,
		MaterialType:  materialType,
	}, nil
}

// UpdateDetails replaces the descriptive fields of the vendor
func (v *Vendor) UpdateDetails(vendorName, address, contact, materialType string) error {
	if vendorName == "" {
		return shared.NewDomainError("INVALID_INPUT", "Vendor name cannot be empty")
	}
	v.VendorName = vendorName
	v.VendorAddress = address
	v.VendorContact = contact
	v.MaterialType = materialType
	v.Touch()
	return nil
}
