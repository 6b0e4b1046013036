package services

import (
	"context"
	"fmt"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"gorm.io/gorm"
)

type WardrobeStore struct {
	db *gorm.DB
}

func NewWardrobeStore(db *gorm.DB) *WardrobeStore {
	return &WardrobeStore{db: db}
}

// ListActive returns the owner's non archived items, oldest first.
func (s *WardrobeStore) ListActive(ctx context.Context, ownerID uint) ([]models.WardrobeItem, error) {
	var items []models.WardrobeItem
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND archived = ?", ownerID, false).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list wardrobe for user %d: %w", ownerID, result.Error)
	}
	return items, nil
}

// ByIDs loads the owner's items with the given ids. Foreign ids are ignored.
func (s *WardrobeStore) ByIDs(ctx context.Context, ownerID uint, ids []uint) ([]models.WardrobeItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.WardrobeItem
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load wardrobe items: %w", result.Error)
	}
	return items, nil
}

func (s *WardrobeStore) Create(ctx context.Context, item *models.WardrobeItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wardrobe item: %w", err)
	}
	return nil
}

// MarkWorn bumps the wear counters of every item in the outfit.
func (s *WardrobeStore) MarkWorn(ctx context.Context, ownerID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Model(&models.WardrobeItem{}).
		Where("owner_id = ? AND id IN ?", ownerID, itemIDs).
		Updates(map[string]any{
			"times_worn":   gorm.Expr("times_worn + 1"),
			"last_worn_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark items worn: %w", result.Error)
	}
	return nil
}
