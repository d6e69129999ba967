package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gideora/website/internal/content"
)

func PageFooter(site content.Site) g.Node {
	return Footer(
		Class("py-12 border-t border-slate-800 bg-slate-950"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("flex flex-col md:flex-row items-center justify-between gap-8"),

				Brand(site.Name, "text-xl"),

				Div(
					Class("flex items-center gap-6"),
					g.Group(g.Map(site.Socials, func(s content.SocialLink) g.Node {
						return A(
							Href(s.Href),
							Class("text-slate-400 hover:text-brand-400 transition-colors"),
							Icon(s.Icon+" w-6 h-6", s.Label),
						)
					})),
				),

				P(
					Class("text-slate-500 text-sm"),
					g.Text(fmt.Sprintf("© %d %s. All rights reserved.", site.Year, site.Name)),
				),
			),
		),
	)
}
