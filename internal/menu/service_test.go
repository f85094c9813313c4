package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMenu(t *testing.T, svc *Service) {
	t.Helper()

	items := []ItemInput{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese",
			Price: 220, Category: CategoryStarter, IsActive: true, IsPopular: true},
		{Name: "Dal Makhani", Description: "Slow-cooked black lentils",
			Price: 260, Category: CategoryMainCourse, IsActive: true},
		{Name: "Gulab Jamun", Description: "Served warm with rabri",
			Price: 120, Category: CategoryDessert, IsActive: false},
	}
	for _, in := range items {
		_, ferrs, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		require.Empty(t, ferrs)
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	_, ferrs, err := svc.Create(context.Background(), ItemInput{
		Name:     "",
		Price:    -10,
		Category: "snacks",
	})
	require.NoError(t, err)
	assert.Contains(t, ferrs, "name")
	assert.Contains(t, ferrs, "price")
	assert.Contains(t, ferrs, "category")
}

func TestMenuFilterActiveOnly(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	seedMenu(t, svc)

	items, err := svc.List(context.Background(), Filter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.IsActive)
	}
}

func TestMenuFilterPopularOnly(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	seedMenu(t, svc)

	items, err := svc.List(context.Background(), Filter{ActiveOnly: true, PopularOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Paneer Tikka", items[0].Name)
}

func TestMenuFilterQueryAndCategory(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	seedMenu(t, svc)

	items, err := svc.List(context.Background(), Filter{Query: "lentils"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dal Makhani", items[0].Name)

	items, err = svc.List(context.Background(), Filter{Category: CategoryDessert})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gulab Jamun", items[0].Name)
}

func TestUpdateMenuItem(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	item, _, err := svc.Create(context.Background(), ItemInput{
		Name: "Paneer Tikka", Price: 220, Category: CategoryStarter, IsActive: true,
	})
	require.NoError(t, err)

	updated, ferrs, err := svc.Update(context.Background(), item.ID, ItemInput{
		Name: "Paneer Tikka", Price: 240, Category: CategoryStarter, IsActive: false,
	})
	require.NoError(t, err)
	require.Empty(t, ferrs)
	assert.Equal(t, 240.0, updated.Price)
	assert.False(t, updated.IsActive)

	_, _, err = svc.Update(context.Background(), "no-such-id", ItemInput{
		Name: "X", Price: 1, Category: CategoryStarter,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMenuItem(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	item, _, err := svc.Create(context.Background(), ItemInput{
		Name: "Paneer Tikka", Price: 220, Category: CategoryStarter,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	_, err = svc.Get(context.Background(), item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
