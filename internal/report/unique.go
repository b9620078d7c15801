package report

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/keysift/keysift/internal/types"
)

// UniqueCount counts distinct keys among findings. Findings themselves are
// never deduplicated.
func UniqueCount(findings []types.Finding) int {
	seen := make(map[uint64]struct{}, len(findings))
	for _, f := range findings {
		seen[xxhash.Sum64String(f.Key)] = struct{}{}
	}
	return len(seen)
}
