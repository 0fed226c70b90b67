package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/jiwoohan/record-analyzer/internal/analysis"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
)

// PDFExporter renders the dashboard data to an A4 HTML document and
// rasterizes it with wkhtmltopdf. The exporter only consumes aggregation
// output; layout decisions live entirely in the template.
type PDFExporter struct {
	tmpl *template.Template
}

func NewPDFExporter() (*PDFExporter, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &PDFExporter{tmpl: tmpl}, nil
}

type itemView struct {
	Label         string
	Score         int
	Max           int
	Color         string
	WidthPercent  int
	Justification string
}

type categoryView struct {
	Name      string
	Accent    string
	ScaleNote string
	Total     int
	Max       int
	Average   string
	Items     []itemView
}

type reportView struct {
	StudentName  string
	Tagline      string
	GrandAverage string
	GrandTotal   int
	GrandMax     int
	Categories   []categoryView
	Result       model.EvaluationResult
}

// Export produces the PDF bytes for one evaluation snapshot.
func (e *PDFExporter) Export(ctx context.Context, result model.EvaluationResult, aggs []analysis.CategoryAggregate, grand analysis.GrandTotal) ([]byte, error) {
	if err := checkWkhtmltopdf(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf check failed: %w", err)
	}

	html, err := e.renderHTML(result, aggs, grand)
	if err != nil {
		return nil, err
	}

	tmpFile, err := os.CreateTemp("", "report-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)
	if _, err := tmpFile.Write(html); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp HTML: %w", err)
	}
	tmpFile.Close()

	cmd := exec.CommandContext(ctx, "wkhtmltopdf",
		"--page-size", "A4",
		"--encoding", "utf-8",
		"--quiet",
		tmpPath, "-")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf error: %w, output: %s", err, stderr.String())
	}

	log.Printf("Exported PDF: %d bytes\n", out.Len())
	return out.Bytes(), nil
}

func (e *PDFExporter) renderHTML(result model.EvaluationResult, aggs []analysis.CategoryAggregate, grand analysis.GrandTotal) ([]byte, error) {
	view := reportView{
		StudentName:  result.StudentName,
		Tagline:      result.Tagline,
		GrandAverage: fmt.Sprintf("%.1f", grand.Average),
		GrandTotal:   grand.TotalScore,
		GrandMax:     grand.MaxScore,
		Result:       result,
	}
	for _, agg := range aggs {
		cv := categoryView{
			Name:      agg.Name,
			Accent:    accentColor(agg.Category),
			ScaleNote: fmt.Sprintf("%d점 만점 항목", agg.Category.MaxScore()),
			Total:     agg.TotalScore,
			Max:       agg.MaxScore,
			Average:   fmt.Sprintf("%.1f", agg.Average),
		}
		for _, item := range agg.Items {
			max := rubric.MaxScoreOf(item.ID)
			cv.Items = append(cv.Items, itemView{
				Label:         item.Label,
				Score:         item.Score,
				Max:           max,
				Color:         barColor(agg.Category, item.Score),
				WidthPercent:  item.Score * 100 / max,
				Justification: item.Justification,
			})
		}
		view.Categories = append(view.Categories, cv)
	}

	var html bytes.Buffer
	if err := e.tmpl.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("render report HTML: %w", err)
	}
	return html.Bytes(), nil
}

// checkWkhtmltopdf verifies the binary is installed and executable.
func checkWkhtmltopdf() error {
	cmd := exec.Command("wkhtmltopdf", "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("wkhtmltopdf not found or not executable: %w\nOutput: %s", err, string(out))
	}
	log.Printf("wkhtmltopdf version: %s\n", strings.Split(string(out), "\n")[0])
	return nil
}
