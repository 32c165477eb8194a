package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go5rae/portfolio/internal/capture"
	"github.com/go5rae/portfolio/internal/config"
	"github.com/go5rae/portfolio/internal/content"
	"github.com/go5rae/portfolio/internal/github"
	"github.com/go5rae/portfolio/internal/prefs"
	"github.com/go5rae/portfolio/internal/session"
	"github.com/go5rae/portfolio/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  "Start the HTTP server that renders the portfolio and its HTMX fragments.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if servePort != "" {
		os.Setenv("PORT", servePort)
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	site, err := content.Load()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	gh := github.NewClient(cfg.GitHubAPI, cfg.GitHubUser)
	gh.TTL = cfg.GitHubTTL

	capturer := capture.New(capture.NewRodShooter(cfg.BrowserBin), cfg.CaptureWidth, cfg.CaptureTimeout)
	defer capturer.Close()

	app := &server{
		cfg:      cfg,
		site:     site,
		store:    db,
		themes:   prefs.NewThemes(db),
		github:   gh,
		capturer: capturer,
		admin:    newAdminAuth(cfg.AdminUsername, cfg.AdminPassword),
	}
	app.sessions = session.NewRegistry(session.Options{
		SubmitDelay: cfg.SubmitDelay,
		ClearDelay:  cfg.ClearDelay,
		IdleTimeout: cfg.SessionIdle,
		OnActive:    app.sectionReached,
	})
	if cfg.DefaultAdminCreds {
		log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
	}

	r, err := app.router()
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go app.sessions.Run(time.Minute, stop)
	go app.cleanupLoop(24*time.Hour, stop)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
