package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gideora/website/internal/viewstate"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Gideora - Your Personal AI Ecosystem"
	}

	if config.Description == "" {
		config.Description = "Privacy-first intelligence for your life and business. Manage expenses, empower employees, and reclaim your data."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("/static/js/tailwind.config.js")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-slate-950 text-white selection:bg-brand-500/30"),
				g.Attr("data-scroll-threshold", strconv.Itoa(viewstate.ScrollThreshold)),

				Div(
					Class("fixed inset-0 overflow-hidden pointer-events-none"),
					Div(Class("absolute top-[-10%] left-[-10%] w-[500px] h-[500px] bg-brand-600/20 rounded-full blur-[100px]")),
					Div(Class("absolute bottom-[-10%] right-[-10%] w-[500px] h-[500px] bg-purple-600/20 rounded-full blur-[100px]")),
				),

				g.Group(content),

				Script(Type("module"), Src("/static/js/viewport.js")),
			),
		),
	})
}
