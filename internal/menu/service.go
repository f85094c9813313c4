package menu

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    bool    `json:"isActive"`
	IsPopular   bool    `json:"isPopular"`
}

func (in ItemInput) validate() validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Require("name", in.Name)
	errs.FloatPositive("price", in.Price)
	errs.OneOf("category", in.Category, Categories()...)
	return errs
}

func (s *Service) Create(ctx context.Context, in ItemInput) (*MenuItem, validate.FieldErrors, error) {
	if errs := in.validate(); errs.Any() {
		return nil, errs, nil
	}

	item := &MenuItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsActive:    in.IsActive,
		IsPopular:   in.IsPopular,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, nil, nil
}

func (s *Service) Update(ctx context.Context, id string, in ItemInput) (*MenuItem, validate.FieldErrors, error) {
	if errs := in.validate(); errs.Any() {
		return nil, errs, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.IsActive = in.IsActive
	item.IsPopular = in.IsPopular

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, nil, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]*MenuItem, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
