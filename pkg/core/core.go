package core

import (
	"github.com/keysift/keysift/internal/engine"
	"github.com/keysift/keysift/internal/extract"
	"github.com/keysift/keysift/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Finding = types.Finding
type Result = engine.Result

// Extract returns the labeled keys in text, in order, duplicates kept.
func Extract(text string) []string { return extract.Extract(text) }

// Find returns the labeled keys in data with their positions.
func Find(path string, data []byte) []Finding { return extract.Find(path, data) }

// Scan extracts keys from every eligible file under cfg.Root.
func Scan(cfg Config) ([]Finding, error) {
	res, err := engine.Scan(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats is Scan plus file counts and duration.
func ScanWithStats(cfg Config) (Result, error) { return engine.Scan(cfg) }

// Pattern returns the expression keys are matched with.
func Pattern() string { return extract.Pattern() }
