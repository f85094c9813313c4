package booking

import "time"

// Booking status lifecycle. Transitions are not restricted; the admin can
// move a booking between any of these. Only the entry into "confirmed"
// carries side effects.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking is one table-reservation request.
type Booking struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email"`
	Date                time.Time  `json:"date"`
	Time                string     `json:"time"`
	People              int        `json:"people"`
	SpecialRequests     *string    `json:"specialRequests,omitempty"`
	Status              string     `json:"status"`
	ConfirmationMessage *string    `json:"confirmationMessage,omitempty"`
	ConfirmedAt         *time.Time `json:"confirmedAt"`
	ConfirmedBy         *string    `json:"confirmedBy,omitempty"`
	AdminNotes          *string    `json:"adminNotes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// StatusUpdate is a partial update: nil fields are left unchanged.
type StatusUpdate struct {
	Status              *string `json:"status"`
	ConfirmationMessage *string `json:"confirmationMessage"`
	AdminNotes          *string `json:"adminNotes"`
	ConfirmedBy         *string `json:"confirmedBy"`
}
