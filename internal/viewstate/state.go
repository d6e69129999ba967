package viewstate

// NavbarVariant names the navbar style for a given scroll state.
type NavbarVariant string

const (
	NavbarTop      NavbarVariant = "top"
	NavbarScrolled NavbarVariant = "scrolled"
)

// State is a read-only snapshot of the controller's flags.
type State struct {
	Scrolled bool
	MenuOpen bool
}

func (s State) NavbarVariant() NavbarVariant {
	if s.Scrolled {
		return NavbarScrolled
	}
	return NavbarTop
}

// FABVisible reports whether the floating portal button is shown.
func (s State) FABVisible() bool {
	return s.Scrolled
}

// MenuIcon is the lucide icon name for the mobile menu toggle.
func (s State) MenuIcon() string {
	if s.MenuOpen {
		return "x"
	}
	return "menu"
}
