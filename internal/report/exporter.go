// Package report renders the downloadable supplier report. HTML built from an
// embedded template is converted to PDF by a Gotenberg instance.
package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FileName is the fixed attachment name for every generated report.
const FileName = "Supplier_report.pdf"

// Line is one supplier entry rendered into the report body.
type Line struct {
	Name    string
	Company string
	Product string
	Contact string
	Email   string
}

// Payload aggregates everything the report template needs.
type Payload struct {
	GeneratedAt time.Time
	Suppliers   []Line
}

// PDFExporter wraps Gotenberg interactions for supplier report generation.
type PDFExporter struct {
	Endpoint  string
	Client    *http.Client
	Logger    *slog.Logger
	templates *template.Template
}

// NewPDFExporter creates a PDFExporter with parsed templates.
func NewPDFExporter(endpoint string, client *http.Client, logger *slog.Logger) (*PDFExporter, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("1/2/2006")
		},
		"formatTime": func(t time.Time) string {
			return t.Format("3:04:05 PM")
		},
	}

	tpl, err := template.New("supplier_report.html").Funcs(funcMap).ParseFS(
		Templates, "templates/supplier_report.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse supplier report template: %w", err)
	}

	return &PDFExporter{
		Endpoint:  endpoint,
		Client:    client,
		Logger:    logger,
		templates: tpl,
	}, nil
}

// Render sends the report HTML to Gotenberg and returns the PDF bytes.
func (p *PDFExporter) Render(ctx context.Context, payload Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pdf exporter not initialized")
	}
	endpoint := strings.TrimRight(p.Endpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("gotenberg endpoint required")
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	html, err := p.buildHTML(payload)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", "supplier-report.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"paperWidth":   "8.5",
		"paperHeight":  "11",
		"marginTop":    "0.5",
		"marginBottom": "0.5",
		"marginLeft":   "0.5",
		"marginRight":  "0.5",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("gotenberg response %d: %s", resp.StatusCode, string(data))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	p.probePageCount(pdf)
	return pdf, nil
}

// probePageCount inspects the rendered document. A document Gotenberg
// accepted but pdfcpu cannot parse is worth a log line, not a failure.
func (p *PDFExporter) probePageCount(pdf []byte) {
	if p.Logger == nil {
		return
	}
	count, err := api.PageCount(bytes.NewReader(pdf), model.NewDefaultConfiguration())
	if err != nil {
		p.Logger.Warn("report page count probe failed", slog.Any("error", err))
		return
	}
	p.Logger.Debug("report rendered", slog.Int("pages", count), slog.Int("bytes", len(pdf)))
}

func (p *PDFExporter) buildHTML(payload Payload) (string, error) {
	if p.templates == nil {
		return "", fmt.Errorf("templates not initialized")
	}

	buf := &bytes.Buffer{}
	if err := p.templates.ExecuteTemplate(buf, "supplier_report.html", payload); err != nil {
		return "", err
	}
	return buf.String(), nil
}
