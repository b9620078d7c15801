package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/keysift/keysift/internal/ignore"
)

// Walk visits every eligible file under cfg.Root in lexical order.
// Unreadable entries are skipped; an error from handle stops the walk.
func Walk(cfg Config, ign ignore.Matcher, handle func(rel string, data []byte) error) (Stats, error) {
	var st Stats
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == cfg.Root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && !cfg.NoDefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)
		if !allowedByGlobs(rel, cfg) || ign.Match(rel) {
			return nil
		}
		if !cfg.NoDefaultExcludes && isDefaultFileExcluded(rel) {
			st.Skipped++
			return nil
		}
		if info, _ := d.Info(); info != nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			st.Skipped++
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			st.Skipped++
			return nil
		}
		if looksBinary(b) {
			st.Skipped++
			return nil
		}
		st.Files++
		return handle(rel, b)
	})
	if err != nil {
		return st, fmt.Errorf("walk %s: %w", cfg.Root, err)
	}
	return st, nil
}
