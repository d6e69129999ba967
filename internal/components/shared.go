package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo is the stacked-hexagon brand mark.
func Logo() g.Node {
	return g.El("svg",
		g.Attr("width", "40"),
		g.Attr("height", "40"),
		g.Attr("viewBox", "0 0 40 40"),
		g.Attr("fill", "none"),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Class("text-brand-400"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("d", "M20 5L30 10V20L20 25L10 20V10L20 5Z"),
			g.Attr("fill", "currentColor"),
			g.Attr("fill-opacity", "0.5"),
		),
		g.El("path",
			g.Attr("d", "M20 15L30 20V30L20 35L10 30V20L20 15Z"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
		),
		g.El("circle",
			g.Attr("cx", "20"),
			g.Attr("cy", "20"),
			g.Attr("r", "3"),
			g.Attr("fill", "white"),
		),
	)
}

func Brand(name, textSize string) g.Node {
	return Div(
		Class(fmt.Sprintf("flex items-center gap-2 font-bold %s tracking-tighter", textSize)),
		Logo(),
		Span(g.Text(name)),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name" optionally followed
// by size classes, e.g. "lucide--arrow-right w-4 h-4".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is the rounded tile feature cards carry their icon in.
func IconBadge(icon string) g.Node {
	return Div(
		Class("w-12 h-12 rounded-lg bg-brand-500/10 flex items-center justify-center mb-4 group-hover:scale-110 transition-transform"),
		Icon(icon+" w-6 h-6 text-brand-400", ""),
	)
}

// scrollClasses emits both class sets of an element whose look follows the
// scroll flag. The browser script swaps between them.
func scrollClasses(base, off, on string, scrolled bool) g.Node {
	current := off
	if scrolled {
		current = on
	}
	return g.Group([]g.Node{
		Class(base + " " + current),
		g.Attr("data-scroll-base", base),
		g.Attr("data-class-off", off),
		g.Attr("data-class-on", on),
	})
}
