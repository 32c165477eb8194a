package main

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/go5rae/portfolio/internal/capture"
	"github.com/go5rae/portfolio/internal/i18n"
	"github.com/go5rae/portfolio/internal/layout"
)

// attachment builds a Content-Disposition value that survives non-ASCII
// file names.
func attachment(name string) string {
	ascii := strings.Map(func(r rune) rune {
		if r > 0x7e || r < 0x20 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, ascii, url.PathEscape(name))
}

// exportFailed reports a failed export with a localized message the client
// shows as an alert. The page itself is untouched.
func exportFailed(c *gin.Context, lang i18n.Lang) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "pdf.error")})
}

func (s *server) sendPDF(c *gin.Context, kind string, lang i18n.Lang, name string, doc []byte) {
	if err := s.store.RecordExport(c.Request.Context(), kind, lang.String()); err != nil {
		log.Printf("Error recording export: %v", err)
	}
	c.Header("Content-Disposition", attachment(name))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// handleResumePDF paginates the resume for the requested language.
func (s *server) handleResumePDF(c *gin.Context) {
	lang := requestLang(c)
	doc, err := layout.RenderResume(s.site, lang, s.cfg.FontPath)
	if err != nil {
		log.Printf("Error generating resume PDF: %v", err)
		exportFailed(c, lang)
		return
	}
	s.sendPDF(c, "resume", lang, layout.ResumeFileName(s.site.Profile, lang), doc)
}

// handlePortfolioPDF captures the whole rendered page.
func (s *server) handlePortfolioPDF(c *gin.Context) {
	lang := requestLang(c)
	target := strings.TrimRight(s.cfg.SiteURL, "/") + "/?" + url.Values{
		"lang":    {lang.String()},
		"capture": {"1"},
	}.Encode()

	doc, err := s.capturer.PDF(c.Request.Context(), target)
	if err != nil {
		if capture.IsBrowserError(err) {
			log.Printf("WARNING: headless browser unavailable, portfolio PDF not captured: %v", err)
		} else {
			log.Printf("Error capturing portfolio PDF: %v", err)
		}
		exportFailed(c, lang)
		return
	}
	s.sendPDF(c, "portfolio", lang, layout.PortfolioFileName(s.site.Profile, lang), doc)
}
