package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/notify"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/outbox"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/validate"
)

// Config carries the business-facing notification targets.
type Config struct {
	BusinessEmail string
	BusinessPhone string
}

type Service struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

func NewService(repo Repository, cfg Config) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name            string
	Phone           string
	Email           string
	Date            string
	Time            string
	People          int
	SpecialRequests string
}

// Create validates the public reservation request and persists it with
// status pending. The customer email, the business email and the business
// WhatsApp text are enqueued in the same transaction as the insert.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Booking, validate.FieldErrors, error) {
	errs := validate.FieldErrors{}

	errs.Require("name", in.Name)
	errs.Require("time", in.Time)
	errs.IndianMobile("phone", in.Phone)
	errs.Email("email", in.Email)
	date := errs.DateNotPast("date", in.Date, s.now())
	errs.IntRange("people", in.People, 1, 20)

	if errs.Any() {
		return nil, errs, nil
	}

	b := &Booking{
		ID:     uuid.New().String(),
		Name:   in.Name,
		Phone:  in.Phone,
		Email:  in.Email,
		Date:   date,
		Time:   in.Time,
		People: in.People,
		Status: StatusPending,
	}
	if in.SpecialRequests != "" {
		b.SpecialRequests = &in.SpecialRequests
	}

	d := s.details(b)
	intents := []*outbox.Message{
		outbox.NewMessage(outbox.ChannelEmail, b.Email,
			notify.BookingReceivedSubject(), notify.BookingReceivedHTML(d)),
		outbox.NewMessage(outbox.ChannelEmail, s.cfg.BusinessEmail,
			notify.BookingAlertSubject(d), notify.BookingAlertHTML(d)),
		outbox.NewMessage(outbox.ChannelWhatsApp, s.cfg.BusinessPhone,
			"", notify.BookingWhatsAppText(d)),
	}

	if err := s.repo.Create(ctx, b, intents); err != nil {
		return nil, nil, err
	}
	return b, nil, nil
}

func (s *Service) List(ctx context.Context, status string) ([]*Booking, error) {
	return s.repo.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial admin update. Entering "confirmed" from any
// other status stamps the confirmation timestamp (once) and enqueues the
// customer confirmation email plus the business WhatsApp text together
// with the update. Re-confirming an already confirmed booking does neither.
// No transition graph is enforced beyond the status enum.
func (s *Service) Update(ctx context.Context, id string, upd *StatusUpdate) (*Booking, validate.FieldErrors, error) {
	errs := validate.FieldErrors{}
	if upd.Status != nil {
		errs.OneOf("status", *upd.Status,
			StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted)
	}
	if errs.Any() {
		return nil, errs, nil
	}

	prev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	confirmNow := upd.Status != nil &&
		*upd.Status == StatusConfirmed &&
		prev.Status != StatusConfirmed

	var intents []*outbox.Message
	if confirmNow {
		d := s.details(prev)

		message := ""
		if upd.ConfirmationMessage != nil {
			message = *upd.ConfirmationMessage
		}

		intents = []*outbox.Message{
			outbox.NewMessage(outbox.ChannelEmail, prev.Email,
				notify.BookingConfirmedSubject(),
				notify.BookingConfirmedHTML(d, message)),
			outbox.NewMessage(outbox.ChannelWhatsApp, s.cfg.BusinessPhone,
				"", notify.BookingConfirmedWhatsAppText(d)),
		}
	}

	b, err := s.repo.ApplyUpdate(ctx, id, upd, confirmNow, intents)
	if err != nil {
		return nil, nil, err
	}
	return b, nil, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) details(b *Booking) notify.BookingDetails {
	return notify.BookingDetails{
		ID:     b.ID,
		Name:   b.Name,
		Phone:  b.Phone,
		Email:  b.Email,
		Date:   b.Date,
		Time:   b.Time,
		People: b.People,
	}
}
