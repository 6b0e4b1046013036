package models

import (
	"fmt"
	"sort"
)

type OutfitItem struct {
	ID        uint          `gorm:"primarykey" json:"-"`
	OutfitID  uint          `gorm:"index" json:"-"`
	ItemID    uint          `json:"item_id"`
	Item      *WardrobeItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Position  Position      `json:"position"`
	Optional  bool          `json:"optional"`
	SortOrder int           `json:"sort_order"`
}

type Outfit struct {
	JsonModel
	OwnerID          uint         `gorm:"index" json:"-"`
	Name             string       `json:"name"`
	Items            []OutfitItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Occasions        []string     `gorm:"serializer:json" json:"occasions"`
	Seasons          []Season     `gorm:"serializer:json" json:"seasons"`
	Formality        Formality    `json:"formality"`
	WeatherCondition *WeatherTag  `json:"weather_condition"`
	Creator          Creator      `json:"creator"`
	Favorite         bool         `json:"favorite"`
	Public           bool         `json:"public"`
	TimesWorn        int          `json:"times_worn"`
	Rating           *float64     `json:"rating"`
	AIScore          *float64     `json:"ai_score"`
	Grade            *string      `json:"grade"`
	StyleTips        []string     `gorm:"serializer:json" json:"style_tips"`
	GenerationID     *string      `gorm:"index" json:"generation_id"`
}

// NewOutfitItem builds an outfit entry with the position derived from the item.
func NewOutfitItem(item WardrobeItem, optional bool) OutfitItem {
	pos := PositionFor(item)
	return OutfitItem{
		ItemID:    item.ID,
		Item:      &item,
		Position:  pos,
		Optional:  optional,
		SortOrder: pos.SortOrder(),
	}
}

// IsIncomplete reports an outfit without any required item.
func (o Outfit) IsIncomplete() bool {
	for _, item := range o.Items {
		if !item.Optional {
			return false
		}
	}
	return true
}

// WardrobeItems returns the loaded items in outfit order, skipping unloaded references.
func (o Outfit) WardrobeItems() []WardrobeItem {
	items := make([]WardrobeItem, 0, len(o.Items))
	for _, oi := range o.Items {
		if oi.Item != nil {
			items = append(items, *oi.Item)
		}
	}
	return items
}

// SortItems orders items by body position, keeping insertion order inside a slot.
func (o *Outfit) SortItems() {
	sort.SliceStable(o.Items, func(a, b int) bool {
		return o.Items[a].Position.SortOrder() < o.Items[b].Position.SortOrder()
	})
	for idx := range o.Items {
		o.Items[idx].SortOrder = idx
	}
}

// ValidateComposition checks that exclusive slots hold at most one required item.
func (o Outfit) ValidateComposition() error {
	taken := map[Position]bool{}
	for _, item := range o.Items {
		if item.Optional || !item.Position.Exclusive() {
			continue
		}
		if taken[item.Position] {
			return fmt.Errorf("outfit has more than one required %s item", item.Position)
		}
		taken[item.Position] = true
	}
	return nil
}
