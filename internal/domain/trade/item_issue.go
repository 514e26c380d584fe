package trade

import "github.com/paperstock/backend/internal/domain/shared"

// ItemIssue records a stock issue to a department. Immutable once created;
// the corresponding stock decrement happens on the item at creation time.
type ItemIssue struct {
	shared.BaseEntity
	IssueNo        string `json:"issueNo"`
	IssueDate      string `json:"issueDate"`
	ItemNumber     string `json:"itemNumber"`
	DepartmentCode string `json:"departmentCode"`
	IssuedQuantity int    `json:"issuedQuantity"`
	Unit           string `json:"unit"`
	IssuedBy       string `json:"issuedBy"`
	IssuedTo       string `json:"issuedTo"`
}

// NewItemIssue creates a new item issue record
func NewItemIssue(issueNo, issueDate, itemNumber, departmentCode string, issuedQuantity int, unit, issuedBy, issuedTo string) (*ItemIssue, error) {
	if issueNo == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Issue number cannot be empty")
	}
	if issueDate == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Issue date cannot be empty")
	}
	if itemNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item number cannot be empty")
	}
	if departmentCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Department code cannot be empty")
	}
	if issuedQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Issue quantity must be a positive integer")
	}

	return &ItemIssue{
		BaseEntity:     shared.NewBaseEntity(),
		IssueNo:        issueNo,
		IssueDate:      issueDate,
		ItemNumber:     itemNumber,
		DepartmentCode: departmentCode,
		IssuedQuantity: issuedQuantity,
		Unit:           unit,
		IssuedBy:       issuedBy,
		IssuedTo:       issuedTo,
	}, nil
}
