package partner

import (
	"context"
	"errors"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
)

// ModuleDepartments is the audit module name for department mutations
const ModuleDepartments = "Department Master"

// DepartmentService handles department master operations
type DepartmentService struct {
	departmentRepo partner.DepartmentRepository
	recorder       *appaudit.Recorder
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo partner.DepartmentRepository, recorder *appaudit.Recorder) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo, recorder: recorder}
}

// Create adds a new department
func (s *DepartmentService) Create(ctx context.Context, actor appaudit.Actor, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	department, err := partner.NewDepartment(req.DepartmentCode, req.DepartmentName, req.DepartmentHead, req.ContactNumber)
	if err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Append(ctx, department); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this code already exists")
		}
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleDepartments, department.DepartmentCode)
	return toDepartmentResponse(department), nil
}

// Update replaces the descriptive fields of an existing department
func (s *DepartmentService) Update(ctx context.Context, actor appaudit.Actor, departmentCode string, req UpdateDepartmentRequest) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByCode(ctx, departmentCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Department not found")
		}
		return nil, err
	}

	if err := department.UpdateDetails(req.DepartmentName, req.DepartmentHead, req.ContactNumber); err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionUpdate, ModuleDepartments, department.DepartmentCode)
	return toDepartmentResponse(department), nil
}

// Get returns a single department by code
func (s *DepartmentService) Get(ctx context.Context, departmentCode string) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByCode(ctx, departmentCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Department not found")
		}
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// List returns all departments in insertion order
func (s *DepartmentService) List(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		out = append(out, *toDepartmentResponse(&departments[i]))
	}
	return out, nil
}
