// Package input acquires the text to scan: a file when one exists, otherwise
// lines pasted on standard input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// DefaultPath is the file read when present.
const DefaultPath = "input.txt"

// PromptText is shown before reading interactively.
const PromptText = "Please paste the text containing API keys (Ctrl+D or Ctrl+Z to finish):"

// OriginStdin is the Source.Origin for interactive input.
const OriginStdin = "stdin"

// ErrInvalidUTF8 is returned when the input is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Options controls where input is read from.
type Options struct {
	Path   string    // file to read; DefaultPath when empty
	Stdin  io.Reader // fallback source
	Prompt io.Writer // receives PromptText before the fallback read; may be nil
}

// Source is the acquired input text and where it came from.
type Source struct {
	Origin string
	Text   string
}

// Acquire reads the input file, falling back to Stdin only when the file
// does not exist. Every other failure is returned.
func Acquire(opts Options) (Source, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	text, err := readFile(path)
	switch {
	case err == nil:
		return Source{Origin: path, Text: text}, nil
	case errors.Is(err, fs.ErrNotExist):
		// fall through to interactive mode
	default:
		return Source{}, err
	}

	if opts.Prompt != nil {
		fmt.Fprintln(opts.Prompt, PromptText)
	}
	if opts.Stdin == nil {
		return Source{Origin: OriginStdin}, nil
	}
	text, err = ReadLines(opts.Stdin)
	if err != nil {
		return Source{}, err
	}
	return Source{Origin: OriginStdin, Text: text}, nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return string(b), nil
}

// ReadLines reads r until EOF and joins the lines, each terminated by "\n".
// A final line without a newline still gets one.
func ReadLines(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var out []byte
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
			}
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			out = append(out, line...)
			out = append(out, '\n')
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("stdin: %w", ErrInvalidUTF8)
	}
	return string(out), nil
}
