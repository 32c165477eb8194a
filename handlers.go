package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go5rae/portfolio/internal/content"
	"github.com/go5rae/portfolio/internal/i18n"
	"github.com/go5rae/portfolio/internal/section"
)

func (s *server) handleIndex(c *gin.Context) {
	data := s.page(c)
	view, st := s.sessions.Open()

	data["experiences"] = s.site.Experiences
	data["skills"] = s.site.Skills
	data["bars"] = s.site.SkillBars()
	data["projects"] = s.site.Projects()
	data["techs"] = s.site.Techs()
	data["tech"] = ""
	data["view"] = view
	data["active"] = st.Tracker.Active()
	data["contact"] = st.Contact.Snapshot()
	data["newsletter"] = st.Newsletter.Snapshot()
	data["capture"] = c.Query("capture") == "1"

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
}

func (s *server) handlePrivacy(c *gin.Context) {
	data := s.page(c)
	data["policy"] = PrivacyPolicy(requestLang(c))
	c.HTML(http.StatusOK, "privacy.html", data)
}

// handleProjects renders the timeline, optionally filtered by one technology.
func (s *server) handleProjects(c *gin.Context) {
	lang := requestLang(c)
	tech := strings.TrimSpace(c.Query("tech"))

	projects := s.site.Projects()
	if tech != "" {
		projects = s.site.FilterByTech(tech)
	}
	c.HTML(http.StatusOK, "projects-list", gin.H{
		"lang":     lang,
		"projects": projects,
		"techs":    s.site.Techs(),
		"tech":     tech,
	})
}

// handleProject renders the modal body with the project README.
func (s *server) handleProject(c *gin.Context) {
	lang := requestLang(c)
	p, ok := s.site.Project(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "project-missing", gin.H{"lang": lang})
		return
	}

	readme, err := content.RenderReadme(p.Readme.In(lang))
	if err != nil {
		log.Printf("Error rendering README for %s: %v", p.ID, err)
		c.HTML(http.StatusInternalServerError, "project-missing", gin.H{"lang": lang})
		return
	}
	c.HTML(http.StatusOK, "project-modal", gin.H{
		"lang":    lang,
		"project": p,
		"readme":  readme,
	})
}

// handleThemeToggle flips and persists the visitor's theme. The new value is
// announced through an HX-Trigger event so the page can swap its class.
func (s *server) handleThemeToggle(c *gin.Context) {
	lang := requestLang(c)
	theme, err := s.themes.Toggle(c.Request.Context(), visitorID(c), c.GetHeader(themeHint))
	if err != nil {
		log.Printf("Error saving theme: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}

	trigger, _ := json.Marshal(map[string]string{"themeChanged": theme.String()})
	c.Header("HX-Trigger", string(trigger))
	if !isHTMX(c) {
		c.JSON(http.StatusOK, gin.H{"theme": theme})
		return
	}
	c.HTML(http.StatusOK, "theme-toggle", gin.H{"lang": lang, "theme": theme})
}

// handleVisibility feeds one batch of visibility reports to the page view's
// tracker and returns the active region. A batch is either precomputed
// ratios or raw geometry measured here.
func (s *server) handleVisibility(c *gin.Context) {
	_, st, ok := s.viewState(c)
	if !ok {
		return
	}
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		active  section.ID
		changed bool
	)
	if req.Viewport != nil {
		active, changed = st.Tracker.ObserveGeometry(*req.Viewport, req.regions())
	} else {
		active, changed = st.Tracker.Observe(req.entries())
	}
	c.JSON(http.StatusOK, gin.H{
		"active":  active,
		"changed": changed,
	})
}

func (s *server) handleGitHubStats(c *gin.Context) {
	lang := requestLang(c)
	stats, err := s.github.Stats(c.Request.Context())
	notice := ""
	if err != nil {
		log.Printf("GitHub stats unavailable, showing fallback: %v", err)
		notice = i18n.T(lang, "github.error")
	}
	c.HTML(http.StatusOK, "github-stats", gin.H{
		"lang":    lang,
		"stats":   stats,
		"notice":  notice,
		"profile": s.site.Profile,
	})
}

func (s *server) handleGitHubActivity(c *gin.Context) {
	lang := requestLang(c)
	feed := s.github.Events(c.Request.Context())
	if feed.Err != nil {
		log.Printf("GitHub activity unavailable: %v", feed.Err)
	}
	c.HTML(http.StatusOK, "github-activity", gin.H{
		"lang": lang,
		"feed": feed,
	})
}
