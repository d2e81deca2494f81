package policy

import (
	"slices"
	"strings"

	"lastseen/internal/domain/entity"
)

// sortLocations orders entries newest first, by record id on equal timestamps.
func sortLocations(locations []entity.VisibleLocation) {
	slices.SortFunc(locations, func(a, b entity.VisibleLocation) int {
		if c := b.Record.UpdatedAt.Compare(a.Record.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.Record.ID.String(), a.Record.ID.String())
	})
}
