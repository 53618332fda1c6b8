package logic

import (
	"strings"

	"repogrip/internal/domain"
)

// Filter returns the items that contain text as a contiguous substring,
// in their original order. Matching is case sensitive and an empty text
// matches every item.
func Filter(items domain.ItemList, text string) domain.ItemList {
	out := make(domain.ItemList, 0, len(items))
	for _, item := range items {
		if strings.Contains(item, text) {
			out = append(out, item)
		}
	}
	return out
}
