// Package site serves the HTML demo: one navigation shell per visitor,
// rendered server-side and advanced with post/redirect/get.
package site

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/session"
	"github.com/tarush10000/Sooru-Demo/domain/wizard"
	"github.com/tarush10000/Sooru-Demo/internal/components"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/internal/content"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
	"github.com/tarush10000/Sooru-Demo/pkg/metrics"
)

// Handler serves the site pages and actions.
type Handler struct {
	sessions *session.Store
	svc      *estimate.Service
	catalog  *content.Catalog
	cookie   config.SessionConfig
	site     config.SiteConfig
	log      *slog.Logger
}

// NewHandler creates a site handler.
func NewHandler(sessions *session.Store, svc *estimate.Service, catalog *content.Catalog, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		svc:      svc,
		catalog:  catalog,
		cookie:   cfg.Session,
		site:     cfg.Site,
		log:      log.With(logger.Scope("site")),
	}
}

// session resolves the visitor's session from the cookie, starting a new
// visit when the cookie is missing or stale.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(h.cookie.CookieName); err == nil {
		id = c.Value
	}

	sess, created := h.sessions.GetOrCreate(id)
	if created {
		h.log.DebugContext(r.Context(), "new visitor session", slog.String("id", sess.ID))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Page handles GET /: render whatever screen the visitor is on.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var (
		screen navigation.Screen
		snap   wizard.Snapshot
	)
	sess.View(func(sh *navigation.Shell) {
		screen = sh.Current()
		if screen == navigation.ScreenDemo {
			snap = sh.Wizard().Snapshot()
		}
	})

	var body g.Node
	switch screen {
	case navigation.ScreenSolutions:
		body = components.Solutions(h.catalog)
	case navigation.ScreenFeatures:
		body = components.Features(h.catalog)
	case navigation.ScreenDemo:
		view, err := h.demoView(r, wizard.Restore(snap))
		if err != nil {
			h.log.ErrorContext(r.Context(), "failed to build demo view", logger.Error(err))
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
		body = components.Demo(h.catalog, view)
	default:
		body = components.Landing(h.catalog)
	}

	metrics.ScreenViews.WithLabelValues(string(screen)).Inc()
	h.render(w, r, http.StatusOK, components.Layout(components.PageConfig{
		Theme:  h.site.Theme,
		Screen: string(screen),
	}, body))
}

func (h *Handler) demoView(r *http.Request, w *wizard.State) (components.DemoView, error) {
	var (
		est     plan.Estimate
		summary string
		err     error
	)
	if w.Step() >= wizard.StepCostAnalysis {
		est, err = h.svc.Estimate(r.Context(), w.Plan(), estimate.SourceSite)
		if err != nil {
			return components.DemoView{}, err
		}
	}
	if w.Step() == wizard.StepShare {
		if summary, err = h.svc.Summary(est); err != nil {
			return components.DemoView{}, err
		}
	}
	return components.NewDemoView(h.catalog, w, est, summary, h.site.ShareLink), nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.WarnContext(r.Context(), "render failed", logger.Error(err))
	}
}

// ScreenNext handles POST /screen/next.
func (h *Handler) ScreenNext(w http.ResponseWriter, r *http.Request) {
	h.session(w, r).Update(func(sh *navigation.Shell) {
		sh.Advance()
	})
	redirectHome(w, r)
}

// ScreenHome handles POST /screen/home. The wizard is discarded.
func (h *Handler) ScreenHome(w http.ResponseWriter, r *http.Request) {
	h.session(w, r).Update(func(sh *navigation.Shell) {
		sh.Home()
	})
	redirectHome(w, r)
}

// wizardAction applies fn when the visitor is on the demo screen.
func (h *Handler) wizardAction(w http.ResponseWriter, r *http.Request, action string, fn func(*wizard.State)) {
	var step wizard.Step
	applied := false
	h.session(w, r).Update(func(sh *navigation.Shell) {
		if sh.Current() != navigation.ScreenDemo {
			return
		}
		wz := sh.Wizard()
		fn(wz)
		step = wz.Step()
		applied = true
	})
	if applied {
		metrics.WizardTransitions.WithLabelValues(action, strconv.Itoa(int(step))).Inc()
	}
	redirectHome(w, r)
}

// DemoNext handles POST /demo/next. On the plan step the posted selects are
// saved before advancing.
func (h *Handler) DemoNext(w http.ResponseWriter, r *http.Request) {
	var form plan.Details
	var hasForm bool
	if err := r.ParseForm(); err == nil {
		form, hasForm = h.planFromForm(r)
	}

	h.wizardAction(w, r, "next", func(wz *wizard.State) {
		if hasForm && wz.Step() == wizard.StepPlanDetails {
			wz.SetPlan(form)
		}
		wz.Next()
	})
}

// planFromForm reads the four selects. Values outside the option catalog are
// dropped; the selects cannot produce them.
func (h *Handler) planFromForm(r *http.Request) (plan.Details, bool) {
	var d plan.Details
	seen := false
	for _, spec := range plan.Fields() {
		if _, ok := r.PostForm[string(spec.Field)]; !ok {
			continue
		}
		seen = true
		v := r.PostForm.Get(string(spec.Field))
		if v != "" && !slices.Contains(spec.Options, v) {
			h.log.DebugContext(r.Context(), "ignoring unknown plan option",
				slog.String("field", string(spec.Field)),
				slog.String("value", v))
			continue
		}
		d.Set(spec.Field, v)
	}
	return d, seen
}

// DemoPrev handles POST /demo/prev.
func (h *Handler) DemoPrev(w http.ResponseWriter, r *http.Request) {
	h.wizardAction(w, r, "prev", func(wz *wizard.State) { wz.Prev() })
}

// DemoRestart handles POST /demo/restart.
func (h *Handler) DemoRestart(w http.ResponseWriter, r *http.Request) {
	h.wizardAction(w, r, "restart", func(wz *wizard.State) { wz.Restart() })
}

// Share handles GET /demo/share/{platform} by redirecting to the platform's
// intent URL. Unknown platforms do nothing and land back on the page.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	intent, err := h.svc.ShareIntent(r.Context(), platform)
	if err != nil {
		h.log.DebugContext(r.Context(), "share ignored",
			slog.String("platform", platform),
			logger.Error(err))
		redirectHome(w, r)
		return
	}
	http.Redirect(w, r, intent.URL, http.StatusSeeOther)
}

// ShareLink handles GET /demo/share-link: the literal link as plain text,
// for browsers where the clipboard script is unavailable.
func (h *Handler) ShareLink(w http.ResponseWriter, r *http.Request) {
	metrics.Shares.WithLabelValues("link").Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.site.ShareLink))
}

// NotFound renders the HTML 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, components.NotFound())
}
