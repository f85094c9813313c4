package offers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newOfferService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestCreateOfferValidation(t *testing.T) {
	svc, _ := newOfferService()

	_, ferrs, err := svc.Create(context.Background(), OfferInput{
		Title:           "",
		DiscountPercent: 120,
		ValidFrom:       testNow,
		ValidUntil:      testNow.Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.Contains(t, ferrs, "title")
	assert.Contains(t, ferrs, "discountPercent")
	assert.Contains(t, ferrs, "validUntil")
}

func TestListCurrentOffers(t *testing.T) {
	svc, _ := newOfferService()

	mk := func(title string, from, until time.Time, active bool) {
		_, ferrs, err := svc.Create(context.Background(), OfferInput{
			Title:           title,
			DiscountPercent: 15,
			ValidFrom:       from,
			ValidUntil:      until,
			IsActive:        active,
		})
		require.NoError(t, err)
		require.Empty(t, ferrs)
	}

	mk("Weekday Lunch", testNow.Add(-24*time.Hour), testNow.Add(24*time.Hour), true)
	mk("Expired Monsoon", testNow.Add(-48*time.Hour), testNow.Add(-time.Hour), true)
	mk("Upcoming Diwali", testNow.Add(24*time.Hour), testNow.Add(72*time.Hour), true)
	mk("Disabled Combo", testNow.Add(-24*time.Hour), testNow.Add(24*time.Hour), false)

	current, err := svc.ListCurrent(context.Background())
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "Weekday Lunch", current[0].Title)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUpdateOffer(t *testing.T) {
	svc, _ := newOfferService()

	o, _, err := svc.Create(context.Background(), OfferInput{
		Title:           "Weekday Lunch",
		DiscountPercent: 15,
		ValidFrom:       testNow,
		ValidUntil:      testNow.Add(24 * time.Hour),
		IsActive:        true,
	})
	require.NoError(t, err)

	updated, ferrs, err := svc.Update(context.Background(), o.ID, OfferInput{
		Title:           "Weekday Lunch",
		DiscountPercent: 20,
		ValidFrom:       testNow,
		ValidUntil:      testNow.Add(48 * time.Hour),
		IsActive:        true,
	})
	require.NoError(t, err)
	require.Empty(t, ferrs)
	assert.Equal(t, 20.0, updated.DiscountPercent)

	_, _, err = svc.Update(context.Background(), "no-such-id", OfferInput{
		Title:           "X",
		DiscountPercent: 5,
		ValidFrom:       testNow,
		ValidUntil:      testNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
