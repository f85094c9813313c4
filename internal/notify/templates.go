package notify

import (
	"fmt"
	"time"
)

// BookingDetails carries the fields the templates need.
type BookingDetails struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	Date   time.Time
	Time   string
	People int
}

func BookingReceivedSubject() string {
	return "🍽️ We received your reservation request"
}

func BookingReceivedHTML(b BookingDetails) string {
	return fmt.Sprintf(`
		<h2>Thank you, %s!</h2>
		<p>We have received your table reservation request:</p>
		<ul>
			<li><b>Date:</b> %s</li>
			<li><b>Time:</b> %s</li>
			<li><b>Guests:</b> %d</li>
		</ul>
		<p>Your booking is <b>pending</b>. We will confirm it shortly.</p>
		<p>— Lakhna Restaurant</p>
	`, b.Name, b.Date.Format("02 Jan 2006"), b.Time, b.People)
}

func BookingAlertSubject(b BookingDetails) string {
	return fmt.Sprintf("🆕 New booking request from %s", b.Name)
}

func BookingAlertHTML(b BookingDetails) string {
	return fmt.Sprintf(`
		<h2>New Booking Request</h2>
		<ul>
			<li><b>Name:</b> %s</li>
			<li><b>Phone:</b> %s</li>
			<li><b>Email:</b> %s</li>
			<li><b>Date:</b> %s</li>
			<li><b>Time:</b> %s</li>
			<li><b>Guests:</b> %d</li>
		</ul>
		<p>Confirm or cancel from the dashboard.</p>
	`, b.Name, b.Phone, b.Email, b.Date.Format("02 Jan 2006"), b.Time, b.People)
}

func BookingWhatsAppText(b BookingDetails) string {
	return fmt.Sprintf(
		"New booking request: %s (%s), %s at %s, %d guests.",
		b.Name, b.Phone, b.Date.Format("02 Jan 2006"), b.Time, b.People,
	)
}

func BookingConfirmedSubject() string {
	return "✅ Your reservation is confirmed"
}

func BookingConfirmedHTML(b BookingDetails, message string) string {
	extra := ""
	if message != "" {
		extra = fmt.Sprintf("<p>%s</p>", message)
	}

	return fmt.Sprintf(`
		<h2>See you soon, %s!</h2>
		<p>Your table for <b>%d</b> on <b>%s</b> at <b>%s</b> is confirmed.</p>
		%s
		<p>— Lakhna Restaurant</p>
	`, b.Name, b.People, b.Date.Format("02 Jan 2006"), b.Time, extra)
}

func BookingConfirmedWhatsAppText(b BookingDetails) string {
	return fmt.Sprintf(
		"Booking confirmed: %s (%s), %s at %s, %d guests.",
		b.Name, b.Phone, b.Date.Format("02 Jan 2006"), b.Time, b.People,
	)
}

func DiscountCodeSubject() string {
	return "🎁 Your Lakhna Restaurant discount code"
}

func DiscountCodeHTML(code string, expiresAt time.Time) string {
	return fmt.Sprintf(`
		<h2>Here is your discount code</h2>
		<h3 style="color:#c0392b;">%s</h3>
		<p>Show this code on your next visit. Valid until %s.</p>
		<p>— Lakhna Restaurant</p>
	`, code, expiresAt.Format("02 Jan 2006"))
}
