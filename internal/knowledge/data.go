package knowledge

// DefaultData is the portfolio content served by this deployment. It mirrors
// the structured data the website renders; the chat assistant is grounded on
// the same records.
func DefaultData() Data {
	return Data{
		Profile: Profile{
			Name:     "Alex Moroz",
			Title:    "Full-stack engineer & freelance consultant",
			Location: "Berlin, Germany",
			Email:    "hello@alexmoroz.dev",
			Summary: "I design and build web products end to end: backend services, " +
				"APIs and the interfaces on top of them. I work with startups and " +
				"small teams that need things shipped, not just discussed.",
		},
		Services: []Service{
			{Name: "Product development", Description: "from idea to deployed MVP, typically in 4-8 weeks"},
			{Name: "Backend & API engineering", Description: "Go and Node services, REST and gRPC, databases, queues"},
			{Name: "Technical consulting", Description: "architecture reviews, performance work, team mentoring"},
		},
		Projects: []Project{
			{
				Name:        "Freightline",
				Description: "logistics tracking platform for a freight forwarder",
				Tech:        []string{"Go", "PostgreSQL", "React"},
				Outcome:     "cut manual dispatch work by roughly 60%.",
			},
			{
				Name:        "Kassa",
				Description: "point-of-sale and inventory system for independent cafes",
				Tech:        []string{"TypeScript", "Node", "Redis"},
				Outcome:     "in production across 14 locations.",
			},
			{
				Name:        "This website",
				Description: "portfolio site with an AI assistant grounded on its own content",
				Tech:        []string{"Go", "Gemini API"},
			},
		},
		Skills: []SkillGroup{
			{Category: "Backend", Skills: []string{"Go", "Node.js", "PostgreSQL", "Redis", "SQLite"}},
			{Category: "Frontend", Skills: []string{"React", "TypeScript", "Next.js"}},
			{Category: "Infrastructure", Skills: []string{"Docker", "GitHub Actions", "Nginx", "Hetzner/AWS"}},
		},
		FAQs: []FAQ{
			{
				Question: "Are you available for new projects?",
				Answer:   "Usually with 2-4 weeks of lead time. The contact form is the fastest way to check current availability.",
			},
			{
				Question: "How do you charge?",
				Answer:   "Fixed price for well-scoped projects, otherwise a weekly rate. Estimates are free.",
			},
			{
				Question: "Do you work remotely?",
				Answer:   "Yes, remote-first. On-site in Berlin is possible for workshops and kickoffs.",
			},
			{
				Question: "Do you take on maintenance of existing systems?",
				Answer:   "Selectively, after a short paid audit of the codebase.",
			},
		},
		Testimonials: []Testimonial{
			{
				Author: "J. Keller",
				Role:   "founder, Freightline",
				Quote:  "Alex shipped in two months what our previous agency estimated at a year.",
			},
			{
				Author: "M. Sato",
				Role:   "CTO, Kassa",
				Quote:  "Rare combination of pragmatism and code quality. We still build on his foundations.",
			},
		},
		Stats: []Stat{
			{Value: "9+", Label: "years of professional experience"},
			{Value: "30+", Label: "projects delivered"},
			{Value: "14", Label: "countries worked with"},
		},
		Posts: []BlogPost{
			{Title: "Boring tech wins", Summary: "why most startups should pick Postgres and move on"},
			{Title: "Shipping an MVP in six weeks", Summary: "a concrete week-by-week plan I reuse"},
		},
	}
}
