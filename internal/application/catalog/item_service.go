package catalog

import (
	"context"
	"errors"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/catalog"
	"github.com/paperstock/backend/internal/domain/shared"
)

// ModuleItems is the audit module name for item master mutations
const ModuleItems = "Item Master"

// ItemService handles item master operations
type ItemService struct {
	itemRepo catalog.ItemRepository
	recorder *appaudit.Recorder
}

// NewItemService creates a new item service
func NewItemService(itemRepo catalog.ItemRepository, recorder *appaudit.Recorder) *ItemService {
	return &ItemService{itemRepo: itemRepo, recorder: recorder}
}

// Create adds a new item to the item master
func (s *ItemService) Create(ctx context.Context, actor appaudit.Actor, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(req.ItemNumber, req.ItemName, req.Description, req.Size, req.Color, req.CurrentStock)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Append(ctx, item); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this number already exists")
		}
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleItems, item.ItemNumber)
	return toItemResponse(item), nil
}

// Update replaces the descriptive fields of an existing item
func (s *ItemService) Update(ctx context.Context, actor appaudit.Actor, itemNumber string, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByNumber(ctx, itemNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}

	oldName := item.ItemName
	if err := item.UpdateDetails(req.ItemName, req.Description, req.Size, req.Color); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if oldName != item.ItemName {
		s.recorder.RecordFieldChange(ctx, actor, ModuleItems, item.ItemNumber, "itemName", oldName, item.ItemName)
	} else {
		s.recorder.Record(ctx, actor, audit.ActionUpdate, ModuleItems, item.ItemNumber)
	}
	return toItemResponse(item), nil
}

// Get returns a single item by number
func (s *ItemService) Get(ctx context.Context, itemNumber string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByNumber(ctx, itemNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}
	return toItemResponse(item), nil
}

// List returns all items in insertion order
func (s *ItemService) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *toItemResponse(&items[i]))
	}
	return out, nil
}
