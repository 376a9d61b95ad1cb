package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// StdinIsPipe reports whether stdin carries piped data rather than a
// terminal. When true and no file arguments were given, paths are read
// one per line from stdin.
func StdinIsPipe() bool {
	return !isatty.IsTerminal(os.Stdin.Fd())
}

// ReadPathLines reads one file path per line, trimming whitespace and
// skipping blank lines.
func ReadPathLines(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
