package summary

import (
	"bytes"
	"context"
	"countryfx/internal/domain"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"text/template"
	"time"
)

const topCount = 5

type CountryReader interface {
	Count(ctx context.Context) (int64, error)
	TopByGDP(ctx context.Context, limit int) ([]domain.Country, error)
}

type RefreshTimeReader interface {
	GetLastRefreshedAt(ctx context.Context) (*time.Time, error)
}

// SVGRenderer writes the post-refresh summary card to a single file on disk.
type SVGRenderer struct {
	countries CountryReader
	settings  RefreshTimeReader
	path      string
}

type summaryRow struct {
	Rank int
	Name string
	GDP  string
	Y    int
}

type summaryView struct {
	Total       int64
	LastRefresh string
	Rows        []summaryRow
	Height      int
	FooterY     int
}

var funcs = template.FuncMap{"xml": escape}

var svgTemplate = template.Must(template.New("summary").Funcs(funcs).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="800" height="{{.Height}}" viewBox="0 0 800 {{.Height}}">
  <rect width="800" height="{{.Height}}" fill="#f5f7fa"/>
  <text x="40" y="60" font-family="Arial, sans-serif" font-size="28" font-weight="bold" fill="#1f2933">Country Summary</text>
  <text x="40" y="110" font-family="Arial, sans-serif" font-size="18" fill="#323f4b">Total countries: {{.Total}}</text>
  <text x="40" y="150" font-family="Arial, sans-serif" font-size="20" font-weight="bold" fill="#323f4b">Top 5 countries by estimated GDP</text>
{{- range .Rows}}
  <text x="60" y="{{.Y}}" font-family="Arial, sans-serif" font-size="16" fill="#3e4c59">{{.Rank}}. {{xml .Name}}: {{.GDP}}</text>
{{- end}}
  <text x="40" y="{{.FooterY}}" font-family="Arial, sans-serif" font-size="14" fill="#7b8794">Last refreshed: {{xml .LastRefresh}}</text>
</svg>
`))

// Generate reads the current aggregates and replaces the image file atomically.
func (r *SVGRenderer) Generate(ctx context.Context) error {
	total, err := r.countries.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count countries: %w", err)
	}
	top, err := r.countries.TopByGDP(ctx, topCount)
	if err != nil {
		return fmt.Errorf("failed to get top countries: %w", err)
	}
	lastRefresh, err := r.settings.GetLastRefreshedAt(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last refresh time: %w", err)
	}

	var buf bytes.Buffer
	if err = svgTemplate.Execute(&buf, buildView(total, top, lastRefresh)); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	return writeAtomic(r.path, buf.Bytes())
}

// ImagePath returns the image location, or domain.ErrSummaryNotFound before the first generation.
func (r *SVGRenderer) ImagePath() (string, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrSummaryNotFound
		}
		return "", fmt.Errorf("failed to stat summary image: %w", err)
	}
	if info.IsDir() {
		return "", domain.ErrSummaryNotFound
	}
	return r.path, nil
}

func buildView(total int64, top []domain.Country, lastRefresh *time.Time) summaryView {
	view := summaryView{Total: total, LastRefresh: "never"}
	if lastRefresh != nil {
		view.LastRefresh = lastRefresh.UTC().Format(time.RFC3339)
	}

	for i, c := range top {
		gdp := "n/a"
		if c.EstimatedGDP != nil {
			gdp = formatGDP(*c.EstimatedGDP)
		}
		view.Rows = append(view.Rows, summaryRow{Rank: i + 1, Name: c.Name, GDP: gdp, Y: 190 + i*32})
	}
	view.Height = 190 + len(view.Rows)*32 + 60
	view.FooterY = view.Height - 30
	return view
}

// formatGDP renders a value with thousands separators and two decimals.
func formatGDP(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg, intPart = true, intPart[1:]
	}

	var out []byte
	for i := range len(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	if neg {
		return "-" + string(out) + frac
	}
	return string(out) + frac
}

func escape(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".summary-*.svg")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close summary: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod summary: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move summary into place: %w", err)
	}
	return nil
}

func NewSVGRenderer(countries CountryReader, settings RefreshTimeReader, path string) *SVGRenderer {
	return &SVGRenderer{countries: countries, settings: settings, path: path}
}
