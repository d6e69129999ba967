package components

import (
	g "maragu.dev/gomponents"

	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/viewstate"
)

// LandingPage composes the full page for the given view state.
func LandingPage(site content.Site, state viewstate.State) g.Node {
	return Layout(
		PageConfig{},
		Navbar(site, state),
		FloatingPortalButton(site, state),
		Hero(site),
		Features(site),
		PageFooter(site),
	)
}
