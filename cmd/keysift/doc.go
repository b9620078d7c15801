// Package keysift provides the command-line interface for keysift. With no
// subcommand it reads input.txt (or pasted text), extracts labeled API keys,
// writes them to api_keys.txt and prints a short summary. Subcommands scan
// directories and git trees, print the pattern, and manage configuration.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/keysift/keysift/cmd/keysift"
//	func main() { keysift.Execute() }
package keysift
