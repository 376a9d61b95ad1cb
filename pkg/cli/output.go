package cli

import (
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/mattn/go-isatty"

	"github.com/gauthamchettiar/schemax/pkg/validation"
)

// OutputFormat selects how validation results are rendered.
type OutputFormat string

const (
	// FormatText is the human-readable rendering (default).
	FormatText OutputFormat = "text"
	// FormatJSON renders one result object per line.
	FormatJSON OutputFormat = "json"
)

// OutputLevel controls which results are rendered.
type OutputLevel string

const (
	// LevelSilent suppresses all per-file output.
	LevelSilent OutputLevel = "silent"
	// LevelQuiet renders failing files only (default).
	LevelQuiet OutputLevel = "quiet"
	// LevelVerbose renders every file.
	LevelVerbose OutputLevel = "verbose"
)

// ANSI sequences used by the text renderer.
const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiDim   = "\x1b[90m"
)

// Printer renders per-file validation results and the final status
// line. The text layout (marker line plus indented "    - $.loc :
// message" detail lines) is matched by CI log parsers and must stay
// stable; color is purely additive.
type Printer struct {
	Format OutputFormat
	Level  OutputLevel
	Out    io.Writer
	ErrOut io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout/stderr, with color
// enabled only for a terminal in text mode.
func NewPrinter(format OutputFormat, level OutputLevel) *Printer {
	return &Printer{
		Format: format,
		Level:  level,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Color:  format == FormatText && isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// PrintResult renders one result subject to the output level: quiet
// shows failures only, verbose shows everything, silent nothing.
func (p *Printer) PrintResult(res validation.Result) error {
	switch p.Level {
	case LevelSilent:
		return nil
	case LevelQuiet:
		if res.Valid {
			return nil
		}
	}
	if p.Format == FormatJSON {
		return gojson.NewEncoder(p.Out).Encode(res)
	}
	return p.printText(res)
}

func (p *Printer) printText(res validation.Result) error {
	if res.Valid {
		_, err := fmt.Fprintf(p.Out, "%s\n", p.paint(ansiGreen, "✅ "+res.FilePath))
		return err
	}
	if _, err := fmt.Fprintf(p.Out, "%s\n", p.paint(ansiRed, "❌ "+res.FilePath)); err != nil {
		return err
	}
	for _, e := range res.Errors {
		line := fmt.Sprintf("    - %s : %s", e.ErrorAt, e.Message)
		if _, err := fmt.Fprintf(p.Out, "%s\n", p.paint(ansiDim, line)); err != nil {
			return err
		}
	}
	return nil
}

// PrintStatus writes the final status line to stderr. It is emitted at
// every output level so scripts piping stdout still see the verdict.
func (p *Printer) PrintStatus(failed bool) {
	if failed {
		fmt.Fprintln(p.ErrOut, "Validation completed with errors!")
		return
	}
	fmt.Fprintln(p.ErrOut, "Validation completed successfully!")
}

func (p *Printer) paint(color, s string) string {
	if !p.Color {
		return s
	}
	return color + s + ansiReset
}
