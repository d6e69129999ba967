package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/viewstate"
)

const (
	navbarBase     = "fixed top-0 left-0 right-0 z-50 transition-all duration-300"
	navbarTop      = "py-6 bg-transparent"
	navbarScrolled = "bg-slate-950/80 backdrop-blur-md border-b border-slate-800 py-4"
)

// NavbarClasses returns the class set for a navbar variant.
func NavbarClasses(v viewstate.NavbarVariant) string {
	if v == viewstate.NavbarScrolled {
		return navbarBase + " " + navbarScrolled
	}
	return navbarBase + " " + navbarTop
}

func Navbar(site content.Site, state viewstate.State) g.Node {
	return Nav(
		g.Attr("data-navbar"),
		g.Attr("data-variant", string(state.NavbarVariant())),
		scrollClasses(navbarBase, navbarTop, navbarScrolled, state.Scrolled),

		Div(
			Class("container mx-auto px-6 flex items-center justify-between"),
			Brand(site.Name, "text-2xl"),

			Div(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(site.Nav, func(l content.Link) g.Node {
					return A(
						Href(l.Href),
						Class("text-sm font-medium text-slate-300 hover:text-white transition-colors"),
						g.Text(l.Label),
					)
				})),
				A(
					Href(site.PortalURL),
					Class("group relative px-6 py-2 bg-brand-600 hover:bg-brand-500 rounded-full font-semibold transition-all shadow-[0_0_20px_-5px_rgba(37,99,235,0.5)] hover:shadow-[0_0_25px_-5px_rgba(37,99,235,0.7)]"),
					Span(
						Class("flex items-center gap-2"),
						g.Text("PORTAL"),
						Icon("lucide--arrow-right w-4 h-4 group-hover:translate-x-1 transition-transform", ""),
					),
				),
			),

			MenuToggle(state),
		),

		MobileMenu(site, state),
	)
}

// MenuToggle is the mobile-only button that opens and closes the menu panel.
func MenuToggle(state viewstate.State) g.Node {
	return Button(
		Type("button"),
		Class("md:hidden text-white"),
		g.Attr("data-menu-toggle"),
		g.Attr("aria-controls", "mobile-menu"),
		g.Attr("aria-expanded", strconv.FormatBool(state.MenuOpen)),
		g.Attr("aria-label", "Toggle navigation"),
		menuIcon("menu", state),
		menuIcon("x", state),
	)
}

func menuIcon(name string, state viewstate.State) g.Node {
	return Span(
		g.Attr("data-menu-icon", name),
		g.If(state.MenuIcon() != name, g.Attr("hidden")),
		Icon("lucide--"+name+" w-6 h-6", ""),
	)
}

// MobileMenu is the dropdown panel under the navbar. It stays in the markup
// while closed so the browser script can reveal it without a round trip.
func MobileMenu(site content.Site, state viewstate.State) g.Node {
	return Div(
		ID("mobile-menu"),
		g.Attr("data-mobile-menu"),
		g.If(!state.MenuOpen, g.Attr("hidden")),
		Class("md:hidden absolute top-full left-0 right-0 bg-slate-950 border-b border-slate-800 p-6 flex flex-col gap-4"),
		g.Group(g.Map(site.Nav, func(l content.Link) g.Node {
			return A(
				Href(l.Href),
				Class("text-lg font-medium text-slate-300"),
				g.Text(l.Label),
			)
		})),
		A(
			Href(site.PortalURL),
			Class("w-full py-3 bg-brand-600 rounded-lg font-semibold text-center"),
			g.Text("PORTAL"),
		),
	)
}
