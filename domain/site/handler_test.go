package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/session"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/internal/content"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

const cookieName = "sooru_session"

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{TTL: time.Minute, CookieName: cookieName},
		Site:    config.SiteConfig{Theme: "sooru-dark", ShareLink: share.DefaultLink, ShareSite: share.DefaultSite},
	}
}

func newTestRouter(t *testing.T) (chi.Router, *session.Store) {
	t.Helper()
	cfg := testConfig()
	store := session.NewStore(cfg.Session.TTL, logger.Discard())
	svc := estimate.NewService(plan.NewAnalyzer(plan.FixedRand(0.9)), share.NewComposer(cfg.Site.ShareSite), false, logger.Discard())
	h := NewHandler(store, svc, content.MustLoad(), cfg, logger.Discard())
	r, err := NewRouter(h)
	require.NoError(t, err)
	return r, store
}

// visitor replays the session cookie across requests like a browser.
type visitor struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func (v *visitor) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	v.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	v.h.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			v.cookie = c
		}
	}
	return rec
}

func (v *visitor) post(path string, form url.Values) {
	v.t.Helper()
	rec := v.do(http.MethodPost, path, form)
	require.Equal(v.t, http.StatusSeeOther, rec.Code, path)
	require.Equal(v.t, "/", rec.Header().Get("Location"))
}

func (v *visitor) page() string {
	v.t.Helper()
	rec := v.do(http.MethodGet, "/", nil)
	require.Equal(v.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func newVisitor(t *testing.T) (*visitor, *session.Store) {
	r, store := newTestRouter(t)
	return &visitor{t: t, h: r}, store
}

func TestFirstVisitGetsLandingAndCookie(t *testing.T) {
	v, store := newVisitor(t)
	html := v.page()

	assert.Contains(t, html, `data-screen="landing"`)
	assert.Contains(t, html, "Do you face these challenges?")
	require.NotNil(t, v.cookie)
	assert.True(t, v.cookie.HttpOnly)
	assert.Equal(t, 1, store.Len())

	v.page()
	assert.Equal(t, 1, store.Len(), "cookie reuses the session")
}

func TestNarrativeFlow(t *testing.T) {
	v, _ := newVisitor(t)
	v.page()

	v.post("/screen/next", nil)
	assert.Contains(t, v.page(), `data-screen="solutions"`)

	v.post("/screen/next", nil)
	assert.Contains(t, v.page(), `data-screen="features"`)

	v.post("/screen/next", nil)
	html := v.page()
	assert.Contains(t, html, `data-screen="demo"`)
	assert.Contains(t, html, "Step 1: Specify Your ")

	v.post("/screen/next", nil)
	assert.Contains(t, v.page(), `data-screen="demo"`, "demo has no next screen")
}

func toDemo(v *visitor) {
	v.page()
	for i := 0; i < 3; i++ {
		v.post("/screen/next", nil)
	}
}

func TestWizardWalkthrough(t *testing.T) {
	v, _ := newVisitor(t)
	toDemo(v)

	v.post("/demo/next", url.Values{
		"rooms":  {"4 Rooms"},
		"style":  {"Modern"},
		"budget": {"$200k - $500k"},
		"size":   {"Large (2500-4000 sq ft)"},
	})
	html := v.page()
	assert.Contains(t, html, "2D Floor Plan")
	assert.Contains(t, html, "Modern")

	v.post("/demo/next", nil)
	assert.Contains(t, v.page(), "Experience your 4-room home in stunning 3D!")

	v.post("/demo/next", nil)
	html = v.page()
	assert.Contains(t, html, "$109,200")
	assert.Contains(t, html, "27,300")
	assert.Contains(t, html, "Energy Efficiency: A+ Rating")
	assert.Contains(t, html, "Space Utilization: 93% Optimal")
	assert.Contains(t, html, "Natural Light: Excellent")
	assert.Contains(t, html, "Budget Variance: +3% (Within Range)")

	v.post("/demo/next", nil)
	html = v.page()
	assert.Contains(t, html, "Your Modern 4-room design ($109,200) is ready to share")

	v.post("/demo/next", nil)
	assert.Contains(t, v.page(), "Design Complete!", "next on the last step is a no-op")

	v.post("/demo/prev", nil)
	assert.Contains(t, v.page(), "Cost Breakdown")
}

func TestPrevOnFirstStepStays(t *testing.T) {
	v, _ := newVisitor(t)
	toDemo(v)
	v.post("/demo/prev", nil)
	assert.Contains(t, v.page(), "Step 1: Specify Your ")
}

func TestUnknownPlanOptionsAreDropped(t *testing.T) {
	v, _ := newVisitor(t)
	toDemo(v)
	v.post("/demo/next", url.Values{"rooms": {"9 Rooms"}, "style": {"Industrial"}})
	html := v.page()
	assert.NotContains(t, html, "9 Rooms")
	assert.Contains(t, html, "Industrial")
}

func TestRestartClearsPlan(t *testing.T) {
	v, _ := newVisitor(t)
	toDemo(v)
	v.post("/demo/next", url.Values{"style": {"Traditional"}})
	v.post("/demo/next", nil)
	v.post("/demo/next", nil)
	v.post("/demo/next", nil)

	v.post("/demo/restart", nil)
	html := v.page()
	assert.Contains(t, html, "Step 1: Specify Your ")
	assert.NotContains(t, html, `value="Traditional" selected`)
}

func TestBackToHomeDiscardsWizard(t *testing.T) {
	v, _ := newVisitor(t)
	toDemo(v)
	v.post("/demo/next", url.Values{"style": {"Minimalist"}})

	v.post("/screen/home", nil)
	assert.Contains(t, v.page(), `data-screen="landing"`)

	toDemo(v)
	html := v.page()
	assert.Contains(t, html, "Step 1: Specify Your ")
	assert.NotContains(t, html, `value="Minimalist" selected`)
}

func TestDemoActionsIgnoredOutsideDemo(t *testing.T) {
	v, _ := newVisitor(t)
	v.page()
	v.post("/demo/next", nil)
	assert.Contains(t, v.page(), `data-screen="landing"`)
}

func TestShareRedirects(t *testing.T) {
	v, _ := newVisitor(t)

	rec := v.do(http.MethodGet, "/demo/share/whatsapp", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://wa.me/?text=%F0%9F%8F%A0%20Just"))

	rec = v.do(http.MethodGet, "/demo/share/twitter", nil)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://twitter.com/intent/tweet?text="))

	rec = v.do(http.MethodGet, "/demo/share/friendster", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestShareLink(t *testing.T) {
	v, _ := newVisitor(t)
	rec := v.do(http.MethodGet, "/demo/share-link", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://sooru.ai/demo/shared-design-123", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestStaticAssets(t *testing.T) {
	v, _ := newVisitor(t)
	rec := v.do(http.MethodGet, "/static/styles.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--fade: 300ms")

	rec = v.do(http.MethodGet, "/static/js/share.js", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-copy-link")
}

func TestNotFoundPage(t *testing.T) {
	v, _ := newVisitor(t)
	rec := v.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This page does not exist.")
}

func TestExpiredCookieStartsOver(t *testing.T) {
	v, _ := newVisitor(t)
	v.cookie = &http.Cookie{Name: cookieName, Value: "c0ffee00-0000-4000-8000-000000000000"}
	html := v.page()
	assert.Contains(t, html, `data-screen="landing"`)
	assert.NotEqual(t, "c0ffee00-0000-4000-8000-000000000000", v.cookie.Value)
}

func TestMountedOnEcho(t *testing.T) {
	r, _ := newTestRouter(t)
	e := echo.New()
	e.GET("/api/options", func(c echo.Context) error { return c.String(http.StatusOK, "api") })
	RegisterRoutes(e, r)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sooru.AI")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/options", nil))
	assert.Equal(t, "api", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/screen/next", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
