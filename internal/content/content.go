// Package content holds the copy shown on the landing page. It is plain data
// shared by the HTML renderer and the terminal preview.
package content

import "time"

const (
	BrandName        = "Gideora"
	FeaturesAnchor   = "#features"
	AboutAnchor      = "#about"
	DefaultPortalURL = "https://portal.gideora.com"
)

type Link struct {
	Label string
	Href  string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
	// Delay staggers the reveal animation, in seconds.
	Delay float64
}

type SocialLink struct {
	Icon  string
	Label string
	Href  string
}

type Hero struct {
	Badge        string
	Title        string
	Highlight    string
	Description  string
	PrimaryCTA   string
	SecondaryCTA string
}

type Section struct {
	Title    string
	Subtitle string
}

// Site is everything the landing page renders.
type Site struct {
	Name      string
	PortalURL string
	Nav       []Link
	Hero      Hero
	Features  Section
	Cards     []Feature
	Socials   []SocialLink
	Year      int
}

// New builds the landing page copy. portalURL is used verbatim by every
// call to action; an empty value falls back to DefaultPortalURL.
func New(portalURL string, now time.Time) Site {
	if portalURL == "" {
		portalURL = DefaultPortalURL
	}

	return Site{
		Name:      BrandName,
		PortalURL: portalURL,
		Nav: []Link{
			{Label: "Features", Href: FeaturesAnchor},
			{Label: "About", Href: AboutAnchor},
		},
		Hero: Hero{
			Badge:        "Next Generation AI Platform",
			Title:        "Your Personal",
			Highlight:    "AI Ecosystem",
			Description:  "Privacy-first intelligence for your life and business. Manage expenses, empower employees, and reclaim your data.",
			PrimaryCTA:   "Enter Portal",
			SecondaryCTA: "Learn More",
		},
		Features: Section{
			Title:    "Unified Intelligence",
			Subtitle: "One platform, endless possibilities. From personal privacy to enterprise management.",
		},
		Cards: []Feature{
			{"lucide--shield", "Privacy First", "Your data remains yours. End-to-end encryption and local-first processing protocols.", 0.1},
			{"lucide--bot", "Your Personal AI", "An assistant that evolves with you, understanding your context without compromising secrets.", 0.2},
			{"lucide--receipt", "Expenses Manager", "Automated tracking, categorization, and insights for personal and business finance.", 0.3},
			{"lucide--building-2", "Company Portal", "Empower your workforce with secure AI tools, role-based access, and collaboration hubs.", 0.4},
		},
		// TODO: replace the placeholder hrefs once the social accounts exist.
		Socials: []SocialLink{
			{"lucide--twitter", "Twitter", "#"},
			{"lucide--linkedin", "LinkedIn", "#"},
			{"lucide--github", "GitHub", "#"},
			{"lucide--instagram", "Instagram", "#"},
		},
		Year: now.Year(),
	}
}
