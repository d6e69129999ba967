package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gideora/website/internal/content"
)

func Features(site content.Site) g.Node {
	return Section(
		ID("features"),
		Class("py-24 bg-slate-950/50"),
		Div(
			Class("container mx-auto px-6"),

			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl md:text-5xl font-bold mb-4"), g.Text(site.Features.Title)),
				P(Class("text-slate-400 text-lg max-w-2xl mx-auto"), g.Text(site.Features.Subtitle)),
			),

			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
				g.Group(g.Map(site.Cards, FeatureCard)),
			),
		),
	)
}

// FeatureCard fades in once when it first enters the viewport; the
// reveal-on-view script reads data-reveal-delay.
func FeatureCard(f content.Feature) g.Node {
	return Div(
		g.Attr("data-reveal"),
		g.Attr("data-reveal-delay", fmt.Sprintf("%.1f", f.Delay)),
		g.Attr("style", fmt.Sprintf("transition-delay: %.1fs", f.Delay)),
		Class("p-6 rounded-2xl bg-slate-900/50 border border-slate-800 hover:border-brand-500/50 hover:bg-slate-900/80 transition-all duration-500 group"),
		IconBadge(f.Icon),
		H3(Class("text-xl font-semibold mb-2 text-white"), g.Text(f.Title)),
		P(Class("text-slate-400"), g.Text(f.Description)),
	)
}
