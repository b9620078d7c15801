// Package engine runs the extractor over many inputs: a directory tree or the
// HEAD tree of a git repository. It applies include/exclude globs, size limits
// and binary detection, and reports findings in visit order.
package engine
