package llm

// BuildReviewSummaryPrompt asks for a short plain-text blurb suitable for
// the storefront testimonial section.
func BuildReviewSummaryPrompt(reviewsText string) string {
	return `You are writing for a restaurant website.
Summarize the following customer reviews into 2-3 warm, honest sentences
for the testimonials section. Mention recurring praise, keep any criticism
gentle, and do not invent details. Respond with plain text only, no
markdown and no quotation marks.

Reviews:
` + reviewsText
}
