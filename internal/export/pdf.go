// Package export turns a rendered resume surface into a downloadable PDF.
// The surface is written to disk and printed through headless Chrome, so
// the output is a rasterized page layout with no text-layer guarantees.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for PrintToPDF
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// printTimeout caps a single print run, browser startup included
const printTimeout = 60 * time.Second

// PDFExporter prints rendered HTML surfaces to PDF via headless Chrome
type PDFExporter struct {
	// chromePath optionally pins the browser binary; empty uses the
	// chromedp default lookup.
	chromePath string
}

// NewPDFExporter creates an exporter. chromePath may be empty.
func NewPDFExporter(chromePath string) *PDFExporter {
	return &PDFExporter{chromePath: chromePath}
}

// ExportPDF prints the surface HTML to a single A4-paged PDF
func (e *PDFExporter) ExportPDF(ctx context.Context, surfaceHTML string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, printTimeout)
	defer cancelTimeout()

	// The surface is served from a temp file so relative assets and
	// file URLs resolve the same way the preview does.
	tmpDir, err := os.MkdirTemp("", "resumate-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(surfaceHTML), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write surface: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print surface: %w", err)
	}
	return pdf, nil
}

// SuggestedFilename derives the download name from the person's name:
// "Jane Doe" becomes "Jane_Doe_Resume.pdf". A blank name falls back to the
// generic "Resume.pdf".
func SuggestedFilename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "Resume.pdf"
	}
	return strings.Join(strings.Fields(name), "_") + "_Resume.pdf"
}
