package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/viewstate"
)

const (
	fabBase    = "fixed bottom-8 right-8 z-40 bg-brand-600 hover:bg-brand-500 text-white p-4 rounded-full shadow-lg shadow-brand-600/30 md:hidden transition-all duration-500"
	fabHidden  = "opacity-0 translate-y-[100px] pointer-events-none"
	fabVisible = "opacity-100 translate-y-0"
)

// FloatingPortalButton is the mobile shortcut to the portal that slides in
// once the page has been scrolled.
func FloatingPortalButton(site content.Site, state viewstate.State) g.Node {
	return A(
		Href(site.PortalURL),
		g.Attr("data-fab"),
		g.Attr("aria-label", "Open portal"),
		g.If(!state.FABVisible(), g.Attr("tabindex", "-1")),
		scrollClasses(fabBase, fabHidden, fabVisible, state.FABVisible()),
		Icon("lucide--layout-dashboard w-6 h-6", ""),
	)
}
