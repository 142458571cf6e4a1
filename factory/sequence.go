/*
Package factory provides config to Go sequence conversion.

PURPOSE:
  Converts JSON or YAML sequence definitions into generic.Sequence
  values. This enables rotation configuration without code changes -
  researchers can define alternative dasha systems in a config file,
  and the factory builds the validated Go struct.

WHY CONFIG FILES?
  - Non-developers can define custom rotations
  - Easy comparison runs between systems
  - Version control for rotation definitions

SCHEMA (JSON shown; YAML mirrors the field names):
  {
    "name": "vimshottari",
    "cycle_years": 120,
    "segments": [
      {"id": "Ketu", "weight_years": 7},
      {"id": "Venus", "weight_years": 20}
    ]
  }

VALIDATION:
  The factory performs structural checks (non-empty name, segments
  present) and defers weight-sum validation to generic.NewSequence, so
  a config file and a hand-built sequence fail the same way.

USAGE:
  seq, err := factory.ParseSequence(jsonStr)
  seq, err := factory.LoadSequenceFile("rotations/yogini.yaml")

SEE ALSO:
  - generic/sequence.go: The validation this package defers to
  - cmd/dasha: Loads sequence files via -sequence
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/dasha-engine/generic"
)

// =============================================================================
// CONFIG SCHEMA TYPES
// =============================================================================

// SequenceConfig is the serialized representation of a rotation.
type SequenceConfig struct {
	Name       string          `json:"name" yaml:"name"`
	CycleYears float64         `json:"cycle_years" yaml:"cycle_years"`
	Segments   []SegmentConfig `json:"segments" yaml:"segments"`
}

// SegmentConfig is one serialized segment.
type SegmentConfig struct {
	ID          string  `json:"id" yaml:"id"`
	WeightYears float64 `json:"weight_years" yaml:"weight_years"`
}

// =============================================================================
// SEQUENCE FACTORY
// =============================================================================

// ParseSequence parses a JSON string into a validated sequence.
func ParseSequence(jsonStr string) (*generic.Sequence, error) {
	var cfg SequenceConfig
	if err := json.Unmarshal([]byte(jsonStr), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sequence JSON: %w", err)
	}
	return FromConfig(cfg)
}

// FromConfig converts a SequenceConfig into a validated sequence.
func FromConfig(cfg SequenceConfig) (*generic.Sequence, error) {
	if len(cfg.Segments) == 0 {
		return nil, fmt.Errorf("sequence %q: %w", cfg.Name, generic.ErrInvalidSequence)
	}

	segments := make([]generic.Segment, 0, len(cfg.Segments))
	for _, sc := range cfg.Segments {
		segments = append(segments, generic.NewSegment(sc.ID, sc.WeightYears))
	}

	seq, err := generic.NewSequence(decimal.NewFromFloat(cfg.CycleYears), segments...)
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", cfg.Name, err)
	}
	return seq, nil
}

// LoadSequenceFile reads a sequence definition from disk, choosing the
// codec by extension: .yaml/.yml use YAML, anything else JSON.
func LoadSequenceFile(path string) (*generic.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence file: %w", err)
	}

	var cfg SequenceConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse sequence YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse sequence JSON %s: %w", path, err)
		}
	}
	return FromConfig(cfg)
}
