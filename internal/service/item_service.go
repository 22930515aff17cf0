package service

import (
	"context"

	"github.com/google/uuid"

	"lekha/internal/domain"
	"lekha/internal/port"
)

// CreateItemInput is the DTO for creating a catalogue item.
type CreateItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	HSNSACCode  string  `json:"hsn_sac_code"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate" binding:"gte=0"`
	GSTRate     float64 `json:"gst_rate" binding:"gte=0"`
	CessRate    float64 `json:"cess_rate" binding:"gte=0"`
}

// UpdateItemInput is the DTO for updating a catalogue item.
type UpdateItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	HSNSACCode  *string  `json:"hsn_sac_code"`
	Unit        *string  `json:"unit"`
	Rate        *float64 `json:"rate"`
	GSTRate     *float64 `json:"gst_rate"`
	CessRate    *float64 `json:"cess_rate"`
}

// ItemService defines the catalogue management contract.
type ItemService interface {
	Create(ctx context.Context, companyID, userID uuid.UUID, input CreateItemInput) (*domain.Item, error)
	GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, companyID uuid.UUID, search string, offset, limit int) ([]domain.Item, int, error)
	Update(ctx context.Context, companyID, itemID uuid.UUID, input UpdateItemInput) (*domain.Item, error)
	Deactivate(ctx context.Context, companyID, itemID uuid.UUID) error
}

type itemService struct {
	repo port.ItemRepository
}

// NewItemService creates a new ItemService implementation.
func NewItemService(repo port.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, companyID, userID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	item := &domain.Item{
		CompanyID:   companyID,
		Name:        input.Name,
		Description: input.Description,
		HSNSACCode:  input.HSNSACCode,
		Unit:        input.Unit,
		Rate:        input.Rate,
		GSTRate:     input.GSTRate,
		CessRate:    input.CessRate,
		IsActive:    true,
		CreatedBy:   userID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error) {
	return s.repo.GetByID(ctx, companyID, itemID)
}

func (s *itemService) List(ctx context.Context, companyID uuid.UUID, search string, offset, limit int) ([]domain.Item, int, error) {
	return s.repo.List(ctx, companyID, search, offset, limit)
}

func (s *itemService) Update(ctx context.Context, companyID, itemID uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.HSNSACCode != nil {
		item.HSNSACCode = *input.HSNSACCode
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Rate != nil {
		item.Rate = *input.Rate
	}
	if input.GSTRate != nil {
		item.GSTRate = *input.GSTRate
	}
	if input.CessRate != nil {
		item.CessRate = *input.CessRate
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Deactivate(ctx context.Context, companyID, itemID uuid.UUID) error {
	return s.repo.Deactivate(ctx, companyID, itemID)
}
