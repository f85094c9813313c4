package review

import "github.com/google/uuid"

// seedReviews returns the demo data loaded by POST /api/seed-reviews.
func seedReviews() []*Review {
	entries := []struct {
		name    string
		rating  int
		comment string
	}{
		{"Priya Sharma", 5, "The butter chicken here is the best I have had outside my grandmother's kitchen. Warm staff, quick service."},
		{"Rahul Verma", 4, "Great ambience for a family dinner. The paneer tikka was smoky and fresh. Slightly long wait on weekends."},
		{"Anita Desai", 5, "We booked a table for ten and everything was ready when we arrived. The biryani is a must-try."},
		{"Vikram Singh", 4, "Generous portions and honest pricing. The masala chai after dinner was a lovely touch."},
		{"Meera Iyer", 5, "Celebrated our anniversary here. They confirmed the booking the same day and even set up a small dessert plate."},
		{"Arjun Nair", 3, "Food was good but the dining hall gets loud on Friday nights. Would still come back for the dal makhani."},
	}

	reviews := make([]*Review, 0, len(entries))
	for _, e := range entries {
		reviews = append(reviews, &Review{
			ID:         uuid.New().String(),
			Name:       e.name,
			Rating:     e.rating,
			Comment:    e.comment,
			IsVerified: true,
		})
	}
	return reviews
}
