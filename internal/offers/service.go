package offers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/validate"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type OfferInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ImageURL        string    `json:"imageUrl"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidUntil      time.Time `json:"validUntil"`
	IsActive        bool      `json:"isActive"`
}

func (in OfferInput) validate() validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Require("title", in.Title)
	if in.DiscountPercent <= 0 || in.DiscountPercent > 100 {
		errs["discountPercent"] = "discountPercent must be between 0 and 100"
	}
	if !in.ValidUntil.After(in.ValidFrom) {
		errs["validUntil"] = "validUntil must be after validFrom"
	}
	return errs
}

func (s *Service) Create(ctx context.Context, in OfferInput) (*Offer, validate.FieldErrors, error) {
	if errs := in.validate(); errs.Any() {
		return nil, errs, nil
	}

	o := &Offer{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		DiscountPercent: in.DiscountPercent,
		ImageURL:        in.ImageURL,
		ValidFrom:       in.ValidFrom,
		ValidUntil:      in.ValidUntil,
		IsActive:        in.IsActive,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, nil, err
	}
	return o, nil, nil
}

func (s *Service) Update(ctx context.Context, id string, in OfferInput) (*Offer, validate.FieldErrors, error) {
	if errs := in.validate(); errs.Any() {
		return nil, errs, nil
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	o.Title = in.Title
	o.Description = in.Description
	o.DiscountPercent = in.DiscountPercent
	o.ImageURL = in.ImageURL
	o.ValidFrom = in.ValidFrom
	o.ValidUntil = in.ValidUntil
	o.IsActive = in.IsActive

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, nil, err
	}
	return o, nil, nil
}

func (s *Service) List(ctx context.Context) ([]*Offer, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListCurrent(ctx context.Context) ([]*Offer, error) {
	return s.repo.ListCurrent(ctx, s.now())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
