// Package files holds small helpers for files keysift writes into a project.
package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// AppendIgnore ensures pattern is present in .gitignore at repoRoot. It
// creates the file if missing and is idempotent.
func AppendIgnore(repoRoot, pattern string) (added bool, err error) {
	path := filepath.Join(repoRoot, ".gitignore")
	existing := map[string]bool{}
	endsWithNewline := true
	if b, err := os.ReadFile(path); err == nil {
		sc := bufio.NewScanner(strings.NewReader(string(b)))
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		endsWithNewline = len(b) == 0 || b[len(b)-1] == '\n'
	}
	if existing[pattern] || existing["/"+pattern] {
		return false, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()
	line := pattern + "\n"
	if !endsWithNewline {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		return false, err
	}
	return true, nil
}

// GeneratedIgnores lists the files keysift may create that hold key
// material or fingerprints of it.
func GeneratedIgnores(keysPath string) []string {
	return []string{filepath.ToSlash(keysPath), ".keysift_audit.jsonl"}
}
