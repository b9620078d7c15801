package report

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultKeysPath is the file extracted keys are written to.
const DefaultKeysPath = "api_keys.txt"

// WriteKeys truncates path and writes one key per line, unmodified.
func WriteKeys(path string, keys []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, k := range keys {
		if _, err := w.WriteString(k + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
