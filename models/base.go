package models

import (
	"strings"
	"time"
)

type JsonModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeTag is the canonical key used for list membership of colors and occasions.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NormalizeColor(name string) string {
	return NormalizeTag(name)
}

func normalizeList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		n := NormalizeTag(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
