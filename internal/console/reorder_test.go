package console

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devjaesung/sowa-admin/internal/api"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		from, to int
		want     []int
	}{
		{"to front", []int{1, 2, 3}, 2, 0, []int{3, 1, 2}},
		{"to back", []int{1, 2, 3}, 0, 2, []int{2, 3, 1}},
		{"adjacent", []int{1, 2, 3, 4}, 1, 2, []int{1, 3, 2, 4}},
		{"in place", []int{1, 2, 3}, 1, 1, []int{1, 2, 3}},
		{"from out of range", []int{1, 2}, 5, 0, []int{1, 2}},
		{"to out of range", []int{1, 2}, 0, 5, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Move(tt.in, tt.from, tt.to))
		})
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	Move(in, 3, 0)
	require.Equal(t, []int{1, 2, 3, 4}, in)
}

func TestPlanCategoryReorderRewritesEveryRow(t *testing.T) {
	cats := []api.Category{
		{ID: 1, Name: "거실", Order: 0},
		{ID: 2, Name: "주방", Order: 1},
		{ID: 3, Name: "침실", Order: 2},
	}
	// drag the last row to the front
	next := Move(cats, 2, 0)
	updates := PlanCategoryReorder(next)

	require.Equal(t, []CategoryOrderUpdate{
		{ID: 3, Input: api.CategoryInput{Name: "침실", Order: 0}},
		{ID: 1, Input: api.CategoryInput{Name: "거실", Order: 1}},
		{ID: 2, Input: api.CategoryInput{Name: "주방", Order: 2}},
	}, updates, "every row is rewritten, changed or not")
}

func TestPlanPortfolioReorderCarriesFieldsAndKeepsImage(t *testing.T) {
	items := []api.PortfolioItem{
		{ID: 10, Title: "아파트", IsFeatured: true, Order: 0, Image: "/media/a.jpg", Category: &api.CategoryRef{ID: 2, Name: "주방"}},
		{ID: 11, Title: "빌라", Order: 1, Image: "/media/b.jpg"},
	}
	updates := PlanPortfolioReorder(Move(items, 1, 0))

	require.Len(t, updates, 2)
	require.Equal(t, 11, updates[0].ID)
	require.Equal(t, 0, updates[0].Input.Order)
	require.Nil(t, updates[0].Input.CategoryID)

	require.Equal(t, 10, updates[1].ID)
	require.Equal(t, 1, updates[1].Input.Order)
	require.True(t, updates[1].Input.IsFeatured)
	require.NotNil(t, updates[1].Input.CategoryID)
	require.Equal(t, 2, *updates[1].Input.CategoryID)
	require.Empty(t, updates[1].Input.ImagePath, "reorder never re-uploads the image")
}
