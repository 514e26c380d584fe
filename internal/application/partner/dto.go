package partner

import (
	"time"

	"github.com/paperstock/backend/internal/domain/partner"
)

// CreateVendorRequest is the input for creating a vendor master record
type CreateVendorRequest struct {
	VendorCode    string `json:"vendorCode" binding:"required"`
	VendorName    string `json:"vendorName" binding:"required"`
	VendorAddress string `json:"vendorAddress"`
	VendorContact string `json:"vendorContact"`
	MaterialType  string `json:"materialType"`
}

// UpdateVendorRequest is the input for updating a vendor's descriptive fields
type UpdateVendorRequest struct {
	VendorName    string `json:"vendorName" binding:"required"`
	VendorAddress string `json:"vendorAddress"`
	VendorContact string `json:"vendorContact"`
	MaterialType  string `json:"materialType"`
}

// VendorResponse is the outward representation of a vendor
type VendorResponse struct {
	VendorCode    string    `json:"vendorCode"`
	VendorName    string    `json:"vendorName"`
	VendorAddress string    `json:"vendorAddress"`
	VendorContact string    `json:"vendorContact"`
	MaterialType  string    `json:"materialType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toVendorResponse(v *partner.Vendor) *VendorResponse {
	return &VendorResponse{
		VendorCode:    v.VendorCode,
		VendorName:    v.VendorName,
		VendorAddress: v.VendorAddress,
		VendorContact: v.VendorContact,
		MaterialType:  v.MaterialType,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// CreateDepartmentRequest is the input for creating a department
type CreateDepartmentRequest struct {
	DepartmentCode string `json:"departmentCode" binding:"required"`
	DepartmentName string `json:"departmentName" binding:"required"`
	DepartmentHead string `json:"departmentHead"`
	ContactNumber  string `json:"contactNumber"`
}

// UpdateDepartmentRequest is the input for updating a department
type UpdateDepartmentRequest struct {
	DepartmentName string `json:"departmentName" binding:"required"`
	DepartmentHead string `json:"departmentHead"`
	ContactNumber  string `json:"contactNumber"`
}

// DepartmentResponse is the outward representation of a department
type DepartmentResponse struct {
	DepartmentCode string    `json:"departmentCode"`
	DepartmentName string    `json:"departmentName"`
	DepartmentHead string    `json:"departmentHead"`
	ContactNumber  string    `json:"contactNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toDepartmentResponse(d *partner.Department) *DepartmentResponse {
	return &DepartmentResponse{
		DepartmentCode: d.DepartmentCode,
		DepartmentName: d.DepartmentName,
		DepartmentHead: d.DepartmentHead,
		ContactNumber:  d.ContactNumber,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// CreateQuantityRequest is the input for creating a unit-of-measure record
type CreateQuantityRequest struct {
	QuantityID   string `json:"quantityId" binding:"required"`
	QuantityName string `json:"quantityName" binding:"required"`
	Quantity     int    `json:"quantity" binding:"gt=0"`
}

// QuantityResponse is the outward representation of a unit of measure
type QuantityResponse struct {
	QuantityID   string    `json:"quantityId"`
	QuantityName string    `json:"quantityName"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toQuantityResponse(q *partner.UnitQuantity) *QuantityResponse {
	return &QuantityResponse{
		QuantityID:   q.QuantityID,
		QuantityName: q.QuantityName,
		Quantity:     q.Quantity,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}
