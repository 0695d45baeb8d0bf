package site

// Static site copy.
const (
	Name      = "TechSphere"
	Footer    = "© 2025 TechSphere Blog. All rights reserved."
	HeroTitle = "TechSphere Blog: Explore the Future"
	HeroCTA   = "Explore Articles"

	FeaturedHeading = "Featured Reads"
	ListingHeading  = "All Articles"

	AboutHeading = "About TechSphere"
	AboutBlurb   = "At TechSphere, we dissect AI, programming, and tech innovation—delivering insights with clarity and curiosity."
	AboutText    = "We’re passionate writers and tech lovers. We distill complex topics into insights that educate and inspire."

	ContactHeading = "Contact Us"
	ContactSubmit  = "Send Message"

	BackLabel       = "Back to Articles"
	NotFoundHeading = "Page not found"
)

var contactFields = []FormField{
	{Name: "name", Placeholder: "Your Name"},
	{Name: "email", Placeholder: "Your Email"},
	{Name: "message", Placeholder: "Your Message", Multiline: true},
}
