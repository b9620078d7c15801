// Package config loads keysift configuration from local and global YAML files.
// CLI code applies precedence: flag, then local file, then global file.
package config
