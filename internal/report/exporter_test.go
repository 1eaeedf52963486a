package report

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPayload() Payload {
	return Payload{
		GeneratedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local),
		Suppliers: []Line{
			{Name: "Jo", Company: "Acme Corp", Product: "Pen", Contact: "1234567890", Email: "a@b.com"},
			{Name: "Sam", Company: "Globex", Product: "Stapler", Contact: "0987654321", Email: "sam@globex.com"},
		},
	}
}

func TestPDFExporter_Render_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forms/chromium/convert/html", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(10<<20))

		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()

		htmlContent, err := io.ReadAll(file)
		require.NoError(t, err)

		html := string(htmlContent)
		assert.Contains(t, html, "Supplier Management Report")
		assert.Contains(t, html, "Date: 3/14/2026")
		assert.Contains(t, html, "Time: 3:09:26 PM")
		assert.Contains(t, html, "Name: Jo")
		assert.Contains(t, html, "Company: Acme Corp")
		assert.Contains(t, html, "Contact: 0987654321")
		assert.Contains(t, html, "Email: sam@globex.com")

		// Records appear in payload order.
		assert.Less(t, strings.Index(html, "Name: Jo"), strings.Index(html, "Name: Sam"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("MOCK-PDF-CONTENT"))
	}))
	defer srv.Close()

	exporter, err := NewPDFExporter(srv.URL, srv.Client(), testLogger())
	require.NoError(t, err)

	pdf, err := exporter.Render(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "MOCK-PDF-CONTENT", string(pdf))
}

func TestPDFExporter_Render_NilExporter(t *testing.T) {
	var exporter *PDFExporter

	_, err := exporter.Render(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestPDFExporter_Render_EmptyEndpoint(t *testing.T) {
	exporter, err := NewPDFExporter("", nil, testLogger())
	require.NoError(t, err)

	_, err = exporter.Render(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint required")
}

func TestPDFExporter_Render_GotenbergError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid HTML"))
	}))
	defer srv.Close()

	exporter, err := NewPDFExporter(srv.URL, srv.Client(), testLogger())
	require.NoError(t, err)

	_, err = exporter.Render(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gotenberg response 400")
	assert.Contains(t, err.Error(), "Invalid HTML")
}

func TestPDFExporter_Render_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("PDF"))
	}))
	defer srv.Close()

	exporter, err := NewPDFExporter(srv.URL, srv.Client(), testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = exporter.Render(ctx, testPayload())
	require.Error(t, err)
}

func TestPDFExporter_Render_EmptySelectionStillRendersHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()
		html, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Contains(t, string(html), "Supplier Management Report")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("PDF"))
	}))
	defer srv.Close()

	exporter, err := NewPDFExporter(srv.URL, srv.Client(), testLogger())
	require.NoError(t, err)

	pdf, err := exporter.Render(context.Background(), Payload{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
