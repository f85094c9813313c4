package discount

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/logger"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/notify"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/validate"
)

var (
	ErrAlreadyIssued  = errors.New("a discount code was already sent to this contact")
	ErrDeliveryFailed = errors.New("failed to deliver the discount code")
)

const (
	codeLength      = 8
	codeCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxCodeAttempts = 8
	codeValidity    = 30 * 24 * time.Hour
)

type Service struct {
	repo   Repository
	mailer notify.EmailSender
	now    func() time.Time
}

func NewService(repo Repository, mailer notify.EmailSender) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		now:    time.Now,
	}
}

// Issue validates the contact, generates a unique code, persists it and
// emails it. The email is sent synchronously: if it fails, the just-created
// record is deleted so the contact can try again.
func (s *Service) Issue(ctx context.Context, contact string) (*Discount, validate.FieldErrors, error) {
	errs := validate.FieldErrors{}
	errs.Require("contact", contact)
	if contact != "" {
		errs.Email("contact", contact)
	}
	if errs.Any() {
		return nil, errs, nil
	}

	exists, err := s.repo.ExistsByContact(ctx, contact)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrAlreadyIssued
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	d := &Discount{
		ID:        uuid.New().String(),
		Contact:   contact,
		Code:      code,
		Used:      false,
		ExpiresAt: s.now().Add(codeValidity),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, nil, err
	}

	err = s.mailer.SendEmail(ctx, contact,
		notify.DiscountCodeSubject(),
		notify.DiscountCodeHTML(d.Code, d.ExpiresAt))
	if err != nil {
		// compensating delete: no code should exist that was never delivered
		if delErr := s.repo.Delete(ctx, d.ID); delErr != nil {
			logger.Log.Error("discount compensation failed",
				"id", d.ID, "err", delErr)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return d, nil, nil
}

func (s *Service) List(ctx context.Context) ([]*Discount, error) {
	return s.repo.List(ctx)
}

func (s *Service) MarkUsed(ctx context.Context, id string) (*Discount, error) {
	return s.repo.MarkUsed(ctx, id)
}

// uniqueCode retries generation a bounded number of times instead of
// looping until a free code turns up.
func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := randomCode(codeLength)
		if err != nil {
			return "", err
		}

		taken, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique discount code")
}

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(buf), nil
}
