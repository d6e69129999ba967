package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/fx"

	"github.com/gideora/website/internal/components"
	"github.com/gideora/website/internal/config"
	"github.com/gideora/website/internal/content"
	"github.com/gideora/website/internal/logger"
	"github.com/gideora/website/internal/viewstate"
)

var Module = fx.Module("handlers",
	fx.Provide(NewPages),
)

// Pages serves the landing page and the health probe.
type Pages struct {
	portalURL string
	log       *slog.Logger
	now       func() time.Time
}

func NewPages(cfg *config.Config, log *slog.Logger) *Pages {
	return &Pages{
		portalURL: cfg.PortalURL,
		log:       log.With(logger.Scope("pages")),
		now:       time.Now,
	}
}

// LandingPage renders the page from a fresh view state: every load starts at
// the top with the menu closed.
func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	state := viewstate.NewController(viewstate.WithLogger(p.log)).State()
	site := content.New(p.portalURL, p.now())

	var buf bytes.Buffer
	if err := components.LandingPage(site, state).Render(&buf); err != nil {
		p.log.Error("render landing page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (p *Pages) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
