// Package extract finds labeled API keys in text. The label, prefix and
// body alphabet are fixed constants; the compiled expression is built from
// them in one place so the matching rule can be audited.
package extract
