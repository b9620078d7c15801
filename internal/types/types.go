package types

// Finding describes one extracted key and where it was found.
type Finding struct {
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column"` // 1-based rune column of the key token
	Offset int    `json:"offset"` // byte offset of the key token
	Key    string `json:"key"`
	Rule   string `json:"rule"`
}
