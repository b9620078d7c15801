package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/keysift/keysift/internal/extract"
	"github.com/keysift/keysift/internal/git"
	"github.com/keysift/keysift/internal/ignore"
	"github.com/keysift/keysift/internal/logging"
	"github.com/keysift/keysift/internal/types"
)

// Config controls which files a scan reads.
type Config struct {
	Root              string
	IncludeGlobs      string
	ExcludeGlobs      string
	MaxBytes          int64 // 0 = unlimited
	NoDefaultExcludes bool
	// GitHead scans the HEAD commit tree of the repository at Root instead
	// of the working tree.
	GitHead bool
}

// Stats counts files read and skipped during a walk.
type Stats struct {
	Files   int
	Skipped int
}

type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration
}

// Scan runs the extractor over every eligible file and returns all findings
// in visit order. Findings are never deduplicated.
func Scan(cfg Config) (Result, error) {
	if err := ValidateGlobs(cfg.IncludeGlobs); err != nil {
		return Result{}, err
	}
	if err := ValidateGlobs(cfg.ExcludeGlobs); err != nil {
		return Result{}, err
	}

	log := logging.Logger().With(slog.String("root", cfg.Root))
	start := time.Now()
	res := Result{Findings: []types.Finding{}}
	handle := func(rel string, data []byte) error {
		found := extract.Find(rel, data)
		if len(found) > 0 {
			log.Debug("keys found", slog.String("path", rel), slog.Int("count", len(found)))
		}
		res.Findings = append(res.Findings, found...)
		return nil
	}

	ign, err := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("load %s: %w", ignore.FileName, err)
	}
	var st Stats
	if cfg.GitHead {
		st, err = walkGitHead(cfg, ign, handle)
	} else {
		st, err = Walk(cfg, ign, handle)
	}
	if err != nil {
		return res, err
	}
	res.FilesScanned = st.Files
	res.FilesSkipped = st.Skipped
	res.Duration = time.Since(start)
	log.Info("scan complete",
		slog.Int("files", st.Files),
		slog.Int("skipped", st.Skipped),
		slog.Int("findings", len(res.Findings)),
		slog.Duration("duration", res.Duration))
	return res, nil
}

func walkGitHead(cfg Config, ign ignore.Matcher, handle func(rel string, data []byte) error) (Stats, error) {
	var st Stats
	err := git.HeadFiles(cfg.Root, func(rel string, size int64, read func() ([]byte, error)) error {
		if !allowedByGlobs(rel, cfg) || ign.Match(rel) {
			return nil
		}
		if !cfg.NoDefaultExcludes && inDefaultExcludedDir(rel) {
			return nil
		}
		if !cfg.NoDefaultExcludes && isDefaultFileExcluded(rel) {
			st.Skipped++
			return nil
		}
		if cfg.MaxBytes > 0 && size > cfg.MaxBytes {
			st.Skipped++
			return nil
		}
		b, err := read()
		if err != nil {
			return fmt.Errorf("read %s at HEAD: %w", rel, err)
		}
		if looksBinary(b) {
			st.Skipped++
			return nil
		}
		st.Files++
		return handle(rel, b)
	})
	return st, err
}
