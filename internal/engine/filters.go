package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
}

var defaultExcludeFileSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp",
	".pdf", ".zip", ".gz", ".tar", ".tgz", ".7z",
	".jar", ".class", ".exe", ".dll", ".so",
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

// inDefaultExcludedDir reports whether any parent directory of the slash
// path rel is excluded by default.
func inDefaultExcludedDir(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, d := range parts[:len(parts)-1] {
		if defaultExcludeDirs[d] {
			return true
		}
	}
	return false
}

func isDefaultFileExcluded(rel string) bool {
	lower := strings.ToLower(rel)
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// allowedByGlobs reports whether relPath passes the include and exclude
// lists. Globs match either the full slash path or the base name.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := filepath.ToSlash(relPath)
	if inc := parseGlobsList(cfg.IncludeGlobs); len(inc) > 0 && !matchAnyGlob(rp, inc) {
		return false
	}
	if exc := parseGlobsList(cfg.ExcludeGlobs); len(exc) > 0 && matchAnyGlob(rp, exc) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, strings.TrimPrefix(p, "./"))
		}
	}
	return out
}

func matchAnyGlob(p string, globs []string) bool {
	base := p
	if i := strings.LastIndex(p, "/"); i >= 0 {
		base = p[i+1:]
	}
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, p); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}

// ValidateGlobs returns an error for the first malformed pattern.
func ValidateGlobs(s string) error {
	for _, g := range parseGlobsList(s) {
		if !doublestar.ValidatePattern(g) {
			return &GlobError{Pattern: g}
		}
	}
	return nil
}

type GlobError struct{ Pattern string }

func (e *GlobError) Error() string { return "invalid glob pattern: " + e.Pattern }

func looksBinary(b []byte) bool {
	const sniff = 8000
	n := min(len(b), sniff)
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
