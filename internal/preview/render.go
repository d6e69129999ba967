package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/viewstate"
)

var (
	brandColor = lipgloss.Color("#3b82f6")
	slate400   = lipgloss.Color("#94a3b8")
	slate800   = lipgloss.Color("#1e293b")
	slate900   = lipgloss.Color("#0f172a")

	navTopStyle      = lipgloss.NewStyle().Padding(0, 1)
	navScrolledStyle = lipgloss.NewStyle().Padding(0, 1).Background(slate900).Bold(true)
	portalStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(brandColor).Bold(true).Padding(0, 1)
	mutedStyle       = lipgloss.NewStyle().Foreground(slate400)
	badgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd")).Border(lipgloss.RoundedBorder()).BorderForeground(brandColor).Padding(0, 1)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	highlightStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(slate800).Padding(0, 1)
	menuStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(slate800).Padding(0, 1)
)

// renderNavbar draws the one-line navbar in the style of the current variant.
func renderNavbar(site content.Site, state viewstate.State, width int) string {
	style := navTopStyle
	if state.NavbarVariant() == viewstate.NavbarScrolled {
		style = navScrolledStyle
	}

	left := "◆ " + site.Name
	toggle := "☰"
	if state.MenuIcon() == "x" {
		toggle = "✕"
	}

	labels := make([]string, 0, len(site.Nav))
	for _, l := range site.Nav {
		labels = append(labels, l.Label)
	}
	right := mutedStyle.Render(strings.Join(labels, "  ")) + "  " + portalStyle.Render("PORTAL →") + "  " + toggle

	inner := max(width-style.GetHorizontalFrameSize(), 0)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderMenu(site content.Site, width int) string {
	lines := make([]string, 0, len(site.Nav)+1)
	for _, l := range site.Nav {
		lines = append(lines, fmt.Sprintf("%s  %s", l.Label, mutedStyle.Render(l.Href)))
	}
	lines = append(lines, portalStyle.Render("PORTAL"))
	return menuStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderFooterBar shows the floating portal button once scrolled, key help
// otherwise.
func renderFooterBar(state viewstate.State, width int) string {
	if state.FABVisible() {
		fab := portalStyle.Render("▣ PORTAL")
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, fab)
	}
	return mutedStyle.MaxWidth(width).Render("↑/↓ scroll • m menu • p portal • q quit")
}

// renderPage lays the page copy out as text at the given width.
func renderPage(site content.Site, width int) string {
	width = max(width, 20)
	wrap := lipgloss.NewStyle().Width(width - 2)
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	line("")
	line(center(badgeStyle.Render(site.Hero.Badge)))
	line("")
	line(center(titleStyle.Render(site.Hero.Title) + " " + highlightStyle.Render(site.Hero.Highlight)))
	line("")
	line(center(mutedStyle.Inherit(wrap).Align(lipgloss.Center).Render(site.Hero.Description)))
	line("")
	line(center(portalStyle.Render(site.Hero.PrimaryCTA+" →") + "   " + site.Hero.SecondaryCTA))
	line("")
	line("")

	line(center(titleStyle.Render(site.Features.Title)))
	line(center(mutedStyle.Inherit(wrap).Align(lipgloss.Center).Render(site.Features.Subtitle)))
	line("")
	cardWidth := max(width-cardStyle.GetHorizontalFrameSize(), 10)
	for _, f := range site.Cards {
		body := titleStyle.Render(f.Title) + "\n" + mutedStyle.Render(f.Description)
		line(cardStyle.Width(cardWidth).Render(body))
	}
	line("")

	socials := make([]string, 0, len(site.Socials))
	for _, s := range site.Socials {
		socials = append(socials, s.Label)
	}
	line(center("◆ " + site.Name))
	line(center(mutedStyle.Render(strings.Join(socials, " · "))))
	sb.WriteString(center(mutedStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", site.Year, site.Name))))

	return sb.String()
}
