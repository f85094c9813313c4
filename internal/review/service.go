package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/llm"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/validate"
)

var ErrNoReviews = errors.New("no verified reviews to summarize")

type Service struct {
	repo Repository
	llm  llm.Client
}

func NewService(repo Repository, llmClient llm.Client) *Service {
	return &Service{repo: repo, llm: llmClient}
}

type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Review, validate.FieldErrors, error) {
	errs := validate.FieldErrors{}
	errs.Require("name", in.Name)
	errs.Require("comment", in.Comment)
	errs.IntRange("rating", in.Rating, 1, 5)
	if in.Email != "" {
		errs.Email("email", in.Email)
	}
	if errs.Any() {
		return nil, errs, nil
	}

	rv := &Review{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Email:   in.Email,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, nil, err
	}
	return rv, nil, nil
}

func (s *Service) List(ctx context.Context, verifiedOnly bool) ([]*Review, error) {
	return s.repo.List(ctx, verifiedOnly)
}

func (s *Service) SetFlags(ctx context.Context, id string, verified, featured *bool) (*Review, error) {
	return s.repo.SetFlags(ctx, id, verified, featured)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// summaryInputLimit caps how many reviews go into the prompt.
const summaryInputLimit = 25

// Summarize turns the most recent verified reviews into a short
// testimonial blurb.
func (s *Service) Summarize(ctx context.Context) (string, error) {
	reviews, err := s.repo.List(ctx, true)
	if err != nil {
		return "", err
	}
	if len(reviews) == 0 {
		return "", ErrNoReviews
	}
	if len(reviews) > summaryInputLimit {
		reviews = reviews[:summaryInputLimit]
	}

	var sb strings.Builder
	for _, rv := range reviews {
		fmt.Fprintf(&sb, "- %s (%d/5): %s\n", rv.Name, rv.Rating, rv.Comment)
	}

	return s.llm.Summarize(ctx, sb.String())
}

// Seed loads the demo reviews. It is a no-op when reviews already exist,
// so hitting the endpoint twice does not duplicate data.
func (s *Service) Seed(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seeded := seedReviews()
	for _, rv := range seeded {
		if err := s.repo.Create(ctx, rv); err != nil {
			return 0, err
		}
	}
	return len(seeded), nil
}
