// Package core provides a small, stable facade over keysift's internal
// packages for programs that want to extract keys without the CLI.
//
// Example:
//
//	keys := core.Extract(text)
//	findings, err := core.Scan(core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
