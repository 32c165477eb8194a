package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/go5rae/portfolio/internal/config"
	"github.com/go5rae/portfolio/internal/content"
	"github.com/go5rae/portfolio/internal/form"
	"github.com/go5rae/portfolio/internal/github"
	"github.com/go5rae/portfolio/internal/i18n"
	"github.com/go5rae/portfolio/internal/prefs"
	"github.com/go5rae/portfolio/internal/section"
	"github.com/go5rae/portfolio/internal/session"
	"github.com/go5rae/portfolio/internal/store"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
	viewHeader    = "X-View-ID"
	viewParam     = "view"
	themeHint     = "Sec-CH-Prefers-Color-Scheme"
)

// pdfCapturer renders a page URL into a tiled PDF.
type pdfCapturer interface {
	PDF(ctx context.Context, pageURL string) ([]byte, error)
}

type server struct {
	cfg      *config.Config
	site     *content.Site
	store    *store.Store
	themes   *prefs.Themes
	sessions *session.Registry
	github   *github.Client
	capturer pdfCapturer
	admin    *adminAuth
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"t": func(lang i18n.Lang, key string) string { return i18n.T(lang, key) },
		"tx": func(lang i18n.Lang, t content.Text) string {
			return t.In(lang)
		},
		"txs": func(lang i18n.Lang, t content.TextList) []string {
			return t.In(lang)
		},
		"formData": func(lang i18n.Lang, view string, snap form.Snapshot) gin.H {
			return gin.H{"lang": lang, "view": view, "form": snap}
		},
		"join":       strings.Join,
		"lower":      strings.ToLower,
		"year":       func() int { return time.Now().Year() },
		"sectionIDs": func() []section.ID { return section.All },
	}
}

func (s *server) router() (*gin.Engine, error) {
	gin.SetMode(s.cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(s.recovered))
	if err := r.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r.SetFuncMap(funcMap())
	r.LoadHTMLGlob(filepath.Join(s.cfg.TemplatesDir, "*"))
	r.Static("/static", s.cfg.StaticDir)

	r.Use(s.visitorMiddleware(), s.trackingMiddleware())

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)
	r.GET("/privacy", s.handlePrivacy)

	r.GET("/projects", s.handleProjects)
	r.GET("/projects/:id", s.handleProject)

	r.POST("/theme/toggle", s.handleThemeToggle)
	r.POST("/sections/visibility", s.handleVisibility)

	r.POST("/contact", s.handleContact)
	r.GET("/contact/status", s.handleContactStatus)
	r.POST("/newsletter", s.handleNewsletter)
	r.GET("/newsletter/status", s.handleNewsletterStatus)

	r.GET("/github/stats", s.handleGitHubStats)
	r.GET("/github/activity", s.handleGitHubActivity)

	r.GET("/resume.pdf", s.handleResumePDF)
	r.GET("/portfolio.pdf", s.handlePortfolioPDF)

	s.adminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		lang := requestLang(c)
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"lang":   lang,
			"status": http.StatusNotFound,
		})
	})
	return r, nil
}

// recovered is the last-resort boundary: any panic in a handler renders the
// generic error page instead of an empty response.
func (s *server) recovered(c *gin.Context, err any) {
	log.Printf("Recovered from panic on %s: %v", c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"lang":   requestLang(c),
		"status": http.StatusInternalServerError,
	})
	c.Abort()
}

// visitorMiddleware gives every browser a stable anonymous id.
func (s *server) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if _, perr := uuid.Parse(id); err != nil || perr != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, 365*24*3600, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string { return c.GetString(visitorKey) }

// pageView returns the id of the page view a fragment request belongs to.
// htmx sends it as a header; plain form posts carry it as a field.
func pageView(c *gin.Context) (string, bool) {
	id := c.GetHeader(viewHeader)
	if id == "" {
		id = c.Query(viewParam)
	}
	if id == "" {
		id = c.PostForm(viewParam)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// viewState resolves the page view of c or answers 400.
func (s *server) viewState(c *gin.Context) (string, *session.State, bool) {
	id, ok := pageView(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing page view"})
		return "", nil, false
	}
	return id, s.sessions.Get(id), true
}

// requestLang reads the lang query or form value; anything else is the default.
func requestLang(c *gin.Context) i18n.Lang {
	if v := c.Query("lang"); v != "" {
		return i18n.Parse(v)
	}
	return i18n.Parse(c.PostForm("lang"))
}

func isHTMX(c *gin.Context) bool { return c.GetHeader("HX-Request") == "true" }

// page builds the data shared by full-page templates.
func (s *server) page(c *gin.Context) gin.H {
	lang := requestLang(c)
	theme, err := s.themes.Resolve(c.Request.Context(), visitorID(c), c.GetHeader(themeHint))
	if err != nil {
		log.Printf("Error resolving theme: %v", err)
	}
	c.Header("Accept-CH", themeHint)
	c.Header("Vary", themeHint)
	return gin.H{
		"lang":    lang,
		"other":   lang.Toggle(),
		"theme":   theme,
		"profile": s.site.Profile,
	}
}
