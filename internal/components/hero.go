package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gideora/website/internal/content"
)

func Hero(site content.Site) g.Node {
	hero := site.Hero

	return Section(
		ID("about"),
		Class("relative pt-32 pb-20 md:pt-48 md:pb-32 container mx-auto px-6 text-center"),
		Div(
			Class("transition-all duration-700 starting:opacity-0 starting:translate-y-5"),

			Div(
				Class("inline-block mb-4 px-4 py-1.5 rounded-full border border-brand-500/30 bg-brand-500/10 text-brand-300 text-sm font-medium"),
				g.Text(hero.Badge),
			),

			H1(
				Class("text-5xl md:text-7xl font-bold mb-6 tracking-tight"),
				g.Text(hero.Title+" "),
				Span(
					Class("text-transparent bg-clip-text bg-gradient-to-r from-brand-400 to-purple-400"),
					g.Text(hero.Highlight),
				),
			),

			P(
				Class("text-xl md:text-2xl text-slate-400 max-w-2xl mx-auto mb-10 leading-relaxed"),
				g.Text(hero.Description),
			),

			Div(
				Class("flex flex-col md:flex-row items-center justify-center gap-4"),
				A(
					Href(site.PortalURL),
					Class("w-full md:w-auto px-8 py-4 bg-white text-slate-950 rounded-full font-bold text-lg hover:bg-brand-50 transition-colors flex items-center justify-center gap-2"),
					g.Text(hero.PrimaryCTA),
					Icon("lucide--arrow-right w-5 h-5", ""),
				),
				A(
					Href(content.FeaturesAnchor),
					Class("w-full md:w-auto px-8 py-4 bg-slate-800 text-white rounded-full font-bold text-lg hover:bg-slate-700 transition-colors"),
					g.Text(hero.SecondaryCTA),
				),
			),
		),
	)
}
