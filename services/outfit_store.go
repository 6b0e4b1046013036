package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOutfitNotFound = errors.New("outfit not found")

type OutfitStore struct {
	db *gorm.DB
}

func NewOutfitStore(db *gorm.DB) *OutfitStore {
	return &OutfitStore{db: db}
}

// WithTx returns a store bound to an open transaction.
func (s *OutfitStore) WithTx(tx *gorm.DB) *OutfitStore {
	return &OutfitStore{db: tx}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Items.Item")
}

// Create persists the outfit and its item rows. Referenced wardrobe items are
// never written.
func (s *OutfitStore) Create(ctx context.Context, outfit *models.Outfit) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := outfit.Items
		if err := tx.Omit(clause.Associations).Create(outfit).Error; err != nil {
			return fmt.Errorf("failed to create outfit: %w", err)
		}
		for idx := range items {
			items[idx].ID = 0
			items[idx].OutfitID = outfit.ID
			if err := tx.Omit("Item").Create(&items[idx]).Error; err != nil {
				return fmt.Errorf("failed to create outfit item: %w", err)
			}
		}
		outfit.Items = items
		return nil
	})
}

func (s *OutfitStore) Get(ctx context.Context, ownerID, outfitID uint) (*models.Outfit, error) {
	var outfit models.Outfit
	result := withItems(s.db.WithContext(ctx)).
		Where("owner_id = ?", ownerID).
		Take(&outfit, outfitID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrOutfitNotFound
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load outfit %d: %w", outfitID, result.Error)
	}
	return &outfit, nil
}

// RecordFeedback stores the feedback row and the rating on the outfit together.
func (s *OutfitStore) RecordFeedback(ctx context.Context, outfit *models.Outfit, feedback *models.OutfitFeedback) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		feedback.OutfitID = outfit.ID
		if err := tx.Create(feedback).Error; err != nil {
			return fmt.Errorf("failed to save feedback: %w", err)
		}
		rating := feedback.Rating
		if err := tx.Model(outfit).Update("rating", rating).Error; err != nil {
			return fmt.Errorf("failed to save rating: %w", err)
		}
		outfit.Rating = &rating
		return nil
	})
}

// ListRated returns the owner's outfits carrying a rating, newest first.
func (s *OutfitStore) ListRated(ctx context.Context, ownerID uint) ([]models.Outfit, error) {
	var outfits []models.Outfit
	result := withItems(s.db.WithContext(ctx)).
		Where("owner_id = ? AND rating IS NOT NULL", ownerID).
		Order("id desc").
		Find(&outfits)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list rated outfits: %w", result.Error)
	}
	return outfits, nil
}

// ListByGeneration returns the outfits created by one generation batch.
func (s *OutfitStore) ListByGeneration(ctx context.Context, ownerID uint, generationID string) ([]models.Outfit, error) {
	var outfits []models.Outfit
	result := withItems(s.db.WithContext(ctx)).
		Where("owner_id = ? AND generation_id = ?", ownerID, generationID).
		Order("id").
		Find(&outfits)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list generation %s: %w", generationID, result.Error)
	}
	return outfits, nil
}
