// Package audit keeps an append-only JSONL record of extraction runs. Key
// values are never written; each key is stored as an xxhash64 fingerprint.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
)

type RunRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	RunID        string    `json:"run_id"`
	Origin       string    `json:"origin"`
	Output       string    `json:"output"`
	Total        int       `json:"total"`
	Unique       int       `json:"unique"`
	Duration     string    `json:"duration"`
	Fingerprints []string  `json:"fingerprints,omitempty"`
}

type AuditLog struct {
	logPath string
}

// NewAuditLog places the log inside root/.git when it exists, otherwise in
// root itself.
func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".keysift_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "keysift_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns records newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			break
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().UnixNano())
	}

	// owner-only: fingerprints still identify keys
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// NewRunRecord summarizes one extraction run.
func NewRunRecord(origin, output string, keys []string, duration time.Duration) RunRecord {
	fps := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		fp := Fingerprint(k)
		fps = append(fps, fp)
		seen[fp] = struct{}{}
	}
	return RunRecord{
		Timestamp:    time.Now(),
		Origin:       origin,
		Output:       output,
		Total:        len(keys),
		Unique:       len(seen),
		Duration:     duration.String(),
		Fingerprints: fps,
	}
}

// Fingerprint returns the 16-digit hex xxhash64 of key.
func Fingerprint(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}
