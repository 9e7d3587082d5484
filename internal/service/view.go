package service

import (
	"sort"
	"strings"

	"github.com/Rugged007/Finance-App/internal/domain"
)

// DeriveView turns the raw transaction collection and the user's view
// parameters into the ordered list the feed displays. It is pure: the input
// slice is never mutated, and the same inputs always produce the same output.
//
// Filtering happens before sorting. Search is a case-insensitive substring
// match over merchant name, category, and description. Sorting is stable;
// with no active sort key the feed defaults to date descending.
func DeriveView(records []*domain.Transaction, params domain.ViewParams) []*domain.Transaction {
	filtered := make([]*domain.Transaction, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(params.SearchText))
	for _, t := range records {
		if search == "" || matchesSearch(t, search) {
			filtered = append(filtered, t)
		}
	}

	asc := params.SortDir == domain.SortAsc

	switch params.SortBy {
	case domain.SortKeyDate:
		sort.SliceStable(filtered, func(i, j int) bool {
			if asc {
				return filtered[i].Date.Before(filtered[j].Date)
			}
			return filtered[i].Date.After(filtered[j].Date)
		})
	case domain.SortKeyAmount:
		sort.SliceStable(filtered, func(i, j int) bool {
			cmp := filtered[i].Amount.Cmp(filtered[j].Amount)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	case domain.SortKeyCategory:
		sort.SliceStable(filtered, func(i, j int) bool {
			cmp := strings.Compare(string(filtered[i].Category), string(filtered[j].Category))
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	default:
		// Default view: newest first.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
	}

	return filtered
}

func matchesSearch(t *domain.Transaction, search string) bool {
	if strings.Contains(strings.ToLower(t.MerchantName), search) {
		return true
	}
	if strings.Contains(strings.ToLower(string(t.Category)), search) {
		return true
	}
	if t.Description != nil && strings.Contains(strings.ToLower(*t.Description), search) {
		return true
	}
	return false
}
