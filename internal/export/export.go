package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
)

// Format represents the export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts csv, json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format: %s", s)
}

// Options configures the export behavior
type Options struct {
	Format    Format
	OutputDir string
	Since     time.Time // only holdings added at or after Since
	CoinID    string    // only this coin
}

// Exporter writes portfolio snapshots to files.
type Exporter struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewExporter creates a new exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{
		logger: logger.Named("export"),
		now:    time.Now,
	}
}

// Export writes the filtered portfolio to a timestamped file in
// opts.OutputDir and returns its path.
func (e *Exporter) Export(p portfolio.Portfolio, opts Options) (string, error) {
	filtered := filter(p, opts)
	if len(filtered) == 0 {
		return "", fmt.Errorf("no holdings match the export criteria")
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return "", err
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(dir, e.filename(opts))
	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := e.Encode(file, filtered, opts.Format); err != nil {
		file.Close()
		os.Remove(outputPath)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	e.logger.Info("Portfolio exported",
		zap.String("file", outputPath),
		zap.Int("count", len(filtered)),
		zap.String("format", string(opts.Format)))

	return outputPath, nil
}

// Encode writes p to w in the given format.
func (e *Exporter) Encode(w io.Writer, p portfolio.Portfolio, format Format) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, p)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(e.document(p)); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e.document(p)); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format: %s", format)
}

func filter(p portfolio.Portfolio, opts Options) portfolio.Portfolio {
	var out portfolio.Portfolio
	for _, h := range p {
		if opts.CoinID != "" && h.ID != opts.CoinID {
			continue
		}
		if !opts.Since.IsZero() && h.AddedAt.Before(opts.Since) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (e *Exporter) filename(opts Options) string {
	timestamp := e.now().Format("20060102_150405")
	prefix := "portfolio"
	if opts.CoinID != "" {
		prefix += "_" + opts.CoinID
	}
	return fmt.Sprintf("%s_%s.%s", prefix, timestamp, opts.Format)
}

// CSVHeaders are the column names of a CSV export.
func CSVHeaders() []string {
	return []string{"id", "name", "symbol", "quantity", "price_when_added", "value", "added_at"}
}

func encodeCSV(w io.Writer, p portfolio.Portfolio) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, h := range p {
		row := []string{
			h.ID,
			h.Name,
			h.Symbol,
			strconv.FormatFloat(h.Quantity, 'f', -1, 64),
			strconv.FormatFloat(h.PriceWhenAdded, 'f', -1, 64),
			h.Value().String(),
			h.AddedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write holding: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Document is the JSON and YAML export layout.
type Document struct {
	ExportTime   time.Time      `json:"export_time" yaml:"export_time"`
	HoldingCount int            `json:"holding_count" yaml:"holding_count"`
	TotalValue   string         `json:"total_value" yaml:"total_value"`
	Holdings     []HoldingEntry `json:"holdings" yaml:"holdings"`
}

// HoldingEntry is one exported holding.
type HoldingEntry struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Symbol         string    `json:"symbol" yaml:"symbol"`
	Image          string    `json:"image,omitempty" yaml:"image,omitempty"`
	Quantity       float64   `json:"quantity" yaml:"quantity"`
	PriceWhenAdded float64   `json:"priceWhenAdded" yaml:"price_when_added"`
	Value          string    `json:"value" yaml:"value"`
	AddedAt        time.Time `json:"addedAt" yaml:"added_at"`
}

func (e *Exporter) document(p portfolio.Portfolio) Document {
	doc := Document{
		ExportTime:   e.now().UTC(),
		HoldingCount: len(p),
		TotalValue:   portfolio.TotalValue(p).StringFixed(2),
		Holdings:     make([]HoldingEntry, 0, len(p)),
	}
	for _, h := range p {
		doc.Holdings = append(doc.Holdings, HoldingEntry{
			ID:             h.ID,
			Name:           h.Name,
			Symbol:         h.Symbol,
			Image:          h.Image,
			Quantity:       h.Quantity,
			PriceWhenAdded: h.PriceWhenAdded,
			Value:          h.Value().StringFixed(2),
			AddedAt:        h.AddedAt,
		})
	}
	return doc
}
