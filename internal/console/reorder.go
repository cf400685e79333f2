package console

import "github.com/devjaesung/sowa-admin/internal/api"

// Reorder planning. A visual move becomes a full rewrite: every item in the
// final sequence gets order = its index, whether or not that changed. The
// remote store has no atomic multi-row update, so a minimal diff would not
// reduce correctness risk, only request count; a partial failure can still
// leave the server half-reordered, recoverable by re-issuing the reorder.

// Move returns the sequence after taking the item at from and inserting it at
// to, everything else keeping relative order. Out-of-range or in-place moves
// return the input unchanged.
func Move[T any](list []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(list) || to >= len(list) {
		return list
	}
	rest := make([]T, 0, len(list)-1)
	rest = append(rest, list[:from]...)
	rest = append(rest, list[from+1:]...)
	next := make([]T, 0, len(list))
	next = append(next, rest[:to]...)
	next = append(next, list[from])
	next = append(next, rest[to:]...)
	return next
}

type CategoryOrderUpdate struct {
	ID    int
	Input api.CategoryInput
}

// PlanCategoryReorder builds the per-item updates realizing the sequence.
func PlanCategoryReorder(list []api.Category) []CategoryOrderUpdate {
	updates := make([]CategoryOrderUpdate, 0, len(list))
	for i, c := range list {
		updates = append(updates, CategoryOrderUpdate{
			ID:    c.ID,
			Input: api.CategoryInput{Name: c.Name, Order: i},
		})
	}
	return updates
}

type PortfolioOrderUpdate struct {
	ID    int
	Input api.PortfolioInput
}

// PlanPortfolioReorder carries each item's current fields with the new order;
// the empty image path keeps the stored image.
func PlanPortfolioReorder(list []api.PortfolioItem) []PortfolioOrderUpdate {
	updates := make([]PortfolioOrderUpdate, 0, len(list))
	for i, item := range list {
		in := api.PortfolioInput{
			Title:       item.Title,
			Description: item.Description,
			IsFeatured:  item.IsFeatured,
			Order:       i,
		}
		if item.Category != nil {
			id := item.Category.ID
			in.CategoryID = &id
		}
		updates = append(updates, PortfolioOrderUpdate{ID: item.ID, Input: in})
	}
	return updates
}
