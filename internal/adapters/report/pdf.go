package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

// Writer renders plans as PDF guides under a fixed output directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "travel_guides"
	}
	return &Writer{dir: dir}
}

func (w *Writer) Write(ctx context.Context, plan *domain.TravelPlan) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		observability.ObserveReport(err)
		return "", fmt.Errorf("report: create output dir: %w", err)
	}
	doc := BuildDocument(plan)
	path := filepath.Join(w.dir, FileName(plan.Destination, plan.GeneratedAt))
	if err := renderPDF(doc, path); err != nil {
		observability.ObserveReport(err)
		return "", fmt.Errorf("report: render %s: %w", path, err)
	}
	observability.ObserveReport(nil)
	log.Info().Str("path", path).Msg("report written")
	return path, nil
}

// Slug flattens a destination for filenames: commas drop, separators and
// spaces become underscores.
func Slug(destination string) string {
	s := strings.NewReplacer(",", "", "/", " ", "\\", " ").Replace(strings.TrimSpace(destination))
	return strings.Join(strings.Fields(s), "_")
}

// FileName is day-granular: regenerating the same destination on the same
// day overwrites, a later day gets a new file.
func FileName(destination string, t time.Time) string {
	return fmt.Sprintf("%s_Travel_Guide_%s.pdf", Slug(destination), t.Format("20060102"))
}

func renderPDF(doc *Document, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Travel Guide to "+doc.Destination), false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	// title page
	pdf.AddPage()
	pdf.SetY(80)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(31, 56, 100)
	pdf.MultiCell(0, 12, tr("Travel Guide to "+doc.Destination), "", "C", false)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, 8, "Your Personal Travel Guide", "", "C", false)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr("Generated on "+doc.Date), "", "C", false)
	if doc.Note != "" {
		pdf.Ln(16)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(doc.Note), "", "C", false)
	}

	// executive summary
	pdf.AddPage()
	sectionTitle(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Summary {
		if line == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}

	for _, sec := range doc.Sections {
		pdf.AddPage()
		sectionTitle(pdf, sec.Title)
		if sec.Intro != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr(sec.Intro), "", "L", false)
			pdf.Ln(2)
		}
		for _, g := range sec.Groups {
			if g.Title != "" {
				pdf.Ln(2)
				pdf.SetFont("Helvetica", "B", 12)
				pdf.SetTextColor(31, 56, 100)
				pdf.MultiCell(0, 7, tr(g.Title), "", "L", false)
				pdf.SetTextColor(0, 0, 0)
			}
			for _, it := range g.Items {
				pdf.SetFont("Helvetica", "B", 10)
				pdf.MultiCell(0, 5, tr(it.Title), "", "L", false)
				pdf.SetFont("Helvetica", "", 10)
				for _, d := range it.Detail {
					pdf.MultiCell(0, 5, tr(d), "", "L", false)
				}
				pdf.Ln(2)
			}
		}
	}
	return pdf.OutputFileAndClose(path)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(31, 56, 100)
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(31, 56, 100)
	pdf.SetLineWidth(0.5)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+60, pdf.GetY())
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)
}
