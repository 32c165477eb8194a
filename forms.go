package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go5rae/portfolio/internal/form"
)

// stopPolling tells htmx to stop an "every" trigger.
const stopPolling = 286

func (s *server) renderForm(c *gin.Context, code int, tmpl, view string, snap form.Snapshot, invalid bool) {
	if snap.Status == form.Idle && code == http.StatusOK && c.Request.Method == http.MethodGet {
		code = stopPolling
	}
	c.HTML(code, tmpl, gin.H{
		"lang":    requestLang(c),
		"view":    view,
		"form":    snap,
		"invalid": invalid,
	})
}

func (s *server) handleContact(c *gin.Context) {
	view, st, ok := s.viewState(c)
	if !ok {
		return
	}
	m := st.Contact

	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		snap := m.Snapshot()
		snap.Fields = form.Fields{"name": c.PostForm("name"), "email": c.PostForm("email"), "message": c.PostForm("message")}
		s.renderForm(c, http.StatusUnprocessableEntity, "contact-form", view, snap, true)
		return
	}

	err := m.Submit(form.Fields{"name": req.Name, "email": req.Email, "message": req.Message})
	if errors.Is(err, form.ErrBusy) {
		s.renderForm(c, http.StatusConflict, "contact-form", view, m.Snapshot(), false)
		return
	}
	s.renderForm(c, http.StatusAccepted, "contact-form", view, m.Snapshot(), false)
}

func (s *server) handleContactStatus(c *gin.Context) {
	view, st, ok := s.viewState(c)
	if !ok {
		return
	}
	s.renderForm(c, http.StatusOK, "contact-form", view, st.Contact.Snapshot(), false)
}

func (s *server) handleNewsletter(c *gin.Context) {
	view, st, ok := s.viewState(c)
	if !ok {
		return
	}
	m := st.Newsletter

	var req newsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		snap := m.Snapshot()
		snap.Fields = form.Fields{"email": c.PostForm("email")}
		s.renderForm(c, http.StatusUnprocessableEntity, "newsletter-form", view, snap, true)
		return
	}

	err := m.Submit(form.Fields{"email": req.Email})
	if errors.Is(err, form.ErrBusy) {
		s.renderForm(c, http.StatusConflict, "newsletter-form", view, m.Snapshot(), false)
		return
	}
	s.renderForm(c, http.StatusAccepted, "newsletter-form", view, m.Snapshot(), false)
}

func (s *server) handleNewsletterStatus(c *gin.Context) {
	view, st, ok := s.viewState(c)
	if !ok {
		return
	}
	s.renderForm(c, http.StatusOK, "newsletter-form", view, st.Newsletter.Snapshot(), false)
}
