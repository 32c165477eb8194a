package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go5rae/portfolio/internal/content"
	"github.com/go5rae/portfolio/internal/i18n"
	"github.com/go5rae/portfolio/internal/layout"
)

var (
	exportLang string
	exportFont string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export-resume",
	Short: "Write the resume PDF to disk",
	Long:  "Paginates the resume for one language and writes it to a file named after the profile and language.",
	RunE:  runExportResume,
}

func init() {
	exportCmd.Flags().StringVarP(&exportLang, "lang", "l", string(i18n.Default), "Display language (ko or en)")
	exportCmd.Flags().StringVar(&exportFont, "font", os.Getenv("RESUME_FONT"), "TrueType font with Hangul glyphs")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExportResume(_ *cobra.Command, _ []string) error {
	if !i18n.Valid(exportLang) {
		return fmt.Errorf("unsupported language %q", exportLang)
	}
	lang := i18n.Lang(exportLang)

	site, err := content.Load()
	if err != nil {
		return err
	}
	doc, err := layout.RenderResume(site, lang, exportFont)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(exportOut, layout.ResumeFileName(site.Profile, lang))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, len(doc))
	return nil
}
