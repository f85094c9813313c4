package discount

import "time"

// Discount is a single-use promotional code bound to one contact.
type Discount struct {
	ID        string    `json:"id"`
	Contact   string    `json:"contact"`
	Code      string    `json:"code"`
	Used      bool      `json:"used"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
