// Package ingest is the validation boundary of carboncalc. It decodes JSON or
// YAML project documents and coerces their untyped records into the model
// types, applying per-field defaults so the engine only ever sees well-typed
// input.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carboncalc/internal/logging"
	"github.com/rshade/carboncalc/internal/model"
	"github.com/rshade/carboncalc/internal/report"
)

// Document decoding errors.
var (
	ErrInvalidSchemaVersion     = errors.New("invalid schema version")
	ErrUnsupportedSchemaVersion = errors.New("unsupported schema version")
	ErrInvalidDocument          = errors.New("invalid project document")
)

// Encoding names the syntax of a document.
type Encoding string

// Supported encodings.
const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// rawDocument is the wire shape of a project document. Records stay untyped
// until coercion.
type rawDocument struct {
	SchemaVersion string              `json:"schemaVersion" yaml:"schemaVersion"`
	Materials     []record            `json:"materials"     yaml:"materials"`
	Transport     []record            `json:"transport"     yaml:"transport"`
	Energy        []record            `json:"energy"        yaml:"energy"`
	Options       model.ReportOptions `json:"options"       yaml:"options"`
}

// Document is a decoded and coerced project document.
type Document struct {
	SchemaVersion string
	Materials     []model.Material
	Transport     []model.TransportItem
	Energy        []model.EnergyItem
	Options       model.ReportOptions

	// Warnings lists values that were present but unusable and were replaced
	// by a default, clamped or dropped.
	Warnings []string
}

// ReportInput returns the document as report assembler input.
func (d *Document) ReportInput() report.Input {
	return report.Input{
		Materials: d.Materials,
		Transport: d.Transport,
		Energy:    d.Energy,
		Options:   d.Options,
	}
}

// EncodingForPath picks the encoding from a file extension. Anything other
// than .yaml or .yml is treated as JSON.
func EncodingForPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// LoadDocument reads and parses the document at path.
func LoadDocument(ctx context.Context, path string) (*Document, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_document").
		Str("document_path", path).
		Msg("loading project document")

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Err(err).
			Str("document_path", path).
			Msg("failed to read project document")
		return nil, fmt.Errorf("reading project document: %w", err)
	}
	return ParseDocument(ctx, data, EncodingForPath(path))
}

// ParseDocument decodes a project document and coerces its records.
//
// A missing schemaVersion is taken as CurrentSchemaVersion; any other value
// must be a semantic version satisfying SupportedSchemaVersions. Malformed
// record fields never fail parsing: they are defaulted and reported in
// Document.Warnings. An absent options.format stays empty so callers can
// apply their own default.
func ParseDocument(ctx context.Context, data []byte, enc Encoding) (*Document, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_document").
		Str("encoding", string(enc)).
		Int("data_size_bytes", len(data)).
		Msg("parsing project document")

	var raw rawDocument
	if err := decode(data, enc, &raw); err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "parse_document").
			Err(err).
			Msg("failed to decode project document")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	version, err := checkSchemaVersion(raw.SchemaVersion)
	if err != nil {
		return nil, err
	}

	if raw.Options.Format != "" {
		format, err := model.ParseReportFormat(string(raw.Options.Format))
		if err != nil {
			return nil, fmt.Errorf("%w: options: %w", ErrInvalidDocument, err)
		}
		raw.Options.Format = format
	}

	doc := &Document{
		SchemaVersion: version,
		Materials:     make([]model.Material, 0, len(raw.Materials)),
		Transport:     make([]model.TransportItem, 0, len(raw.Transport)),
		Energy:        make([]model.EnergyItem, 0, len(raw.Energy)),
		Options:       raw.Options,
	}

	for i, rec := range raw.Materials {
		c := &coercer{kind: kindMaterial, index: i, rec: rec}
		doc.Materials = append(doc.Materials, coerceMaterial(c))
		doc.Warnings = append(doc.Warnings, c.warnings...)
	}
	for i, rec := range raw.Transport {
		c := &coercer{kind: kindTransport, index: i, rec: rec}
		doc.Transport = append(doc.Transport, coerceTransport(c))
		doc.Warnings = append(doc.Warnings, c.warnings...)
	}
	for i, rec := range raw.Energy {
		c := &coercer{kind: kindEnergy, index: i, rec: rec}
		doc.Energy = append(doc.Energy, coerceEnergy(c))
		doc.Warnings = append(doc.Warnings, c.warnings...)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("materials", len(doc.Materials)).
		Int("transport", len(doc.Transport)).
		Int("energy", len(doc.Energy)).
		Int("warnings", len(doc.Warnings)).
		Msg("project document parsed")

	return doc, nil
}

func decode(data []byte, enc Encoding, out *rawDocument) error {
	switch enc {
	case EncodingYAML:
		return yaml.Unmarshal(data, out)
	case EncodingJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		return dec.Decode(out)
	default:
		return fmt.Errorf("unknown encoding %q", enc)
	}
}

// checkSchemaVersion validates v and returns the version the document is read as.
func checkSchemaVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return CurrentSchemaVersion, nil
	}

	parsed, err := semver.NewVersion(v)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidSchemaVersion, v, err)
	}

	constraint, err := semver.NewConstraint(SupportedSchemaVersions)
	if err != nil {
		return "", fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(parsed) {
		return "", fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchemaVersion, parsed, SupportedSchemaVersions)
	}
	return parsed.String(), nil
}
