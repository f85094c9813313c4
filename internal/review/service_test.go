package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM echoes what it would summarize.
type fakeLLM struct {
	lastInput string
	reply     string
}

func (f *fakeLLM) Summarize(ctx context.Context, text string) (string, error) {
	f.lastInput = text
	return f.reply, nil
}

func TestCreateReviewValidation(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), &fakeLLM{})

	_, ferrs, err := svc.Create(context.Background(), CreateInput{
		Name:    "",
		Email:   "bad-email",
		Rating:  6,
		Comment: "",
	})
	require.NoError(t, err)
	assert.Contains(t, ferrs, "name")
	assert.Contains(t, ferrs, "email")
	assert.Contains(t, ferrs, "rating")
	assert.Contains(t, ferrs, "comment")
}

func TestCreateReviewStartsUnverified(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), &fakeLLM{})

	rv, ferrs, err := svc.Create(context.Background(), CreateInput{
		Name:    "Ravi Kumar",
		Rating:  5,
		Comment: "The dal makhani is unreal.",
	})
	require.NoError(t, err)
	require.Empty(t, ferrs)
	assert.False(t, rv.IsVerified)
	assert.False(t, rv.IsFeatured)
}

func TestPublicListOnlyVerified(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, &fakeLLM{})

	rv, _, err := svc.Create(context.Background(), CreateInput{
		Name: "Ravi Kumar", Rating: 5, Comment: "Great food.",
	})
	require.NoError(t, err)
	_, _, err = svc.Create(context.Background(), CreateInput{
		Name: "Sunita Devi", Rating: 4, Comment: "Lovely evening.",
	})
	require.NoError(t, err)

	verified := true
	_, err = svc.SetFlags(context.Background(), rv.ID, &verified, nil)
	require.NoError(t, err)

	public, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Ravi Kumar", public[0].Name)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSummarize(t *testing.T) {
	repo := NewInMemoryRepository()
	llmClient := &fakeLLM{reply: "Guests love the tandoor and the warm service."}
	svc := NewService(repo, llmClient)

	rv, _, err := svc.Create(context.Background(), CreateInput{
		Name: "Ravi Kumar", Rating: 5, Comment: "Best tandoori in Lakhna.",
	})
	require.NoError(t, err)

	verified := true
	_, err = svc.SetFlags(context.Background(), rv.ID, &verified, nil)
	require.NoError(t, err)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, llmClient.reply, summary)
	assert.Contains(t, llmClient.lastInput, "Ravi Kumar (5/5)")
	assert.Contains(t, llmClient.lastInput, "Best tandoori in Lakhna.")
}

func TestSummarizeWithoutVerifiedReviews(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), &fakeLLM{})

	// An unverified review alone is not enough.
	_, _, err := svc.Create(context.Background(), CreateInput{
		Name: "Ravi Kumar", Rating: 5, Comment: "Great food.",
	})
	require.NoError(t, err)

	_, err = svc.Summarize(context.Background())
	assert.ErrorIs(t, err, ErrNoReviews)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, &fakeLLM{})

	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	again, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, total)
}
