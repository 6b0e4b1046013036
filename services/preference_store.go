package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

// PreferenceUpdate derives the next preferences from the current ones. Returning
// false leaves the stored record untouched.
type PreferenceUpdate func(current models.UserPreferences) (models.UserPreferences, bool, error)

// PreferenceStore serializes read-modify-write cycles on a user's preferences.
// An in-process mutex per user orders local writers; the row lock orders
// writers in other processes.
type PreferenceStore struct {
	db    *gorm.DB
	locks sync.Map // uint -> *sync.Mutex
}

func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

func (s *PreferenceStore) lock(userID uint) func() {
	m, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *PreferenceStore) Get(ctx context.Context, userID uint) (models.UserPreferences, error) {
	var user models.UserAccount
	result := s.db.WithContext(ctx).Take(&user, userID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.UserPreferences{}, ErrUserNotFound
	}
	if result.Error != nil {
		return models.UserPreferences{}, fmt.Errorf("failed to load preferences of user %d: %w", userID, result.Error)
	}
	return user.Preferences, nil
}

// Update applies fn to the stored preferences and persists the result. The
// stored value after the call is returned whether or not fn changed it.
func (s *PreferenceStore) Update(ctx context.Context, userID uint, fn PreferenceUpdate) (models.UserPreferences, error) {
	return s.UpdateWithin(ctx, userID, nil, fn)
}

// UpdateWithin is Update with before run in the same transaction once the user
// row is locked. An error from either side rolls back both.
func (s *PreferenceStore) UpdateWithin(ctx context.Context, userID uint, before func(tx *gorm.DB) error, fn PreferenceUpdate) (models.UserPreferences, error) {
	unlock := s.lock(userID)
	defer unlock()

	var next models.UserPreferences
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.UserAccount
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&user, userID)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if result.Error != nil {
			return result.Error
		}
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}

		updated, changed, err := fn(user.Preferences.Clone())
		if err != nil {
			return err
		}
		if !changed {
			next = user.Preferences
			return nil
		}
		user.Preferences = updated
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		next = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.UserPreferences{}, err
		}
		return models.UserPreferences{}, fmt.Errorf("failed to update preferences of user %d: %w", userID, err)
	}
	return next, nil
}

func (s *PreferenceStore) Patch(ctx context.Context, userID uint, patch models.PreferencesPatch) (models.UserPreferences, error) {
	return s.Update(ctx, userID, func(current models.UserPreferences) (models.UserPreferences, bool, error) {
		if patch.IsEmpty() {
			return current, false, nil
		}
		return patch.Apply(current), true, nil
	})
}
