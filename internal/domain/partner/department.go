package partner

import "github.com/paperstock/backend/internal/domain/shared"

// Department represents a department that items are issued to
type Department struct {
	shared.BaseEntity
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	DepartmentHead string `json:"departmentHead"`
	ContactNumber  string `json:"contactNumber"`
}

// NewDepartment creates a new department master record
func NewDepartment(code, name, head, contactNumber string) (*Department, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Department code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Department name cannot be empty")
	}

	return &Department{
		BaseEntity:     shared.NewBaseEntity(),
		DepartmentCode: code,
		DepartmentName: name,
		DepartmentHead: head,
		ContactNumber:  contactNumber,
	}, nil
}

// UpdateDetails replaces the descriptive fields of the department
func (d *Department) UpdateDetails(name, head, contactNumber string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Department name cannot be empty")
	}
	d.DepartmentName = name
	d.DepartmentHead = head
	d.ContactNumber = contactNumber
	d.Touch()
	return nil
}
