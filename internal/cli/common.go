package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/ingest"
	"github.com/rshade/carboncalc/internal/logging"
)

// Exit codes returned by the carboncalc binary.
const (
	ExitCodeError            = 1
	ExitCodeInsufficientData = 2
)

// ErrNoInput is returned when no document is given and none is found by
// walking up from the working directory.
var ErrNoInput = errors.New("no input document: pass a file or run inside a project with carboncalc.yaml")

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	ExitCode int
	Reason   string
	Err      error
}

func (e *ExitError) Error() string {
	return e.Reason
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to the process exit code: 0 for nil, the
// carried code for an ExitError and ExitCodeError otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return ExitCodeError
}

// resolveInputPath returns the document named on the command line or the
// nearest project document.
func resolveInputPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	if doc := config.FindProjectDocument(wd); doc != "" {
		return doc, nil
	}
	return "", ErrNoInput
}

// loadInput resolves and parses the input document. Coercion warnings are
// logged and echoed to stderr.
func loadInput(cmd *cobra.Command, args []string) (*ingest.Document, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	path, err := resolveInputPath(args)
	if err != nil {
		return nil, err
	}

	doc, err := ingest.LoadDocument(ctx, path)
	if err != nil {
		return nil, err
	}

	for _, w := range doc.Warnings {
		log.Warn().
			Ctx(ctx).
			Str("component", "cli").
			Str("document_path", path).
			Msg(w)
		cmd.PrintErrf("Warning: %s\n", w)
	}
	return doc, nil
}

// outputFormat returns the --output flag value, falling back to the
// configured default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format := config.GetDefaultOutputFormat()
	if f := cmd.Flag("output"); f != nil && f.Changed {
		format = f.Value.String()
	}
	switch format {
	case config.OutputFormatTable, config.OutputFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: must be %s or %s",
			format, config.OutputFormatTable, config.OutputFormatJSON)
	}
}

// addOutputFlag registers the --output flag shared by rendering commands.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", config.OutputFormatTable, "output format: table or json")
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isWriterTerminal reports whether w is a terminal file.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// Styles for terminal output.
func titleColor() lipgloss.Color { return lipgloss.Color("39") }
func sectionColor() lipgloss.Color { return lipgloss.Color("33") }
func borderColor() lipgloss.Color { return lipgloss.Color("240") }
func goodColor() lipgloss.Color { return lipgloss.Color("42") }
func warnColor() lipgloss.Color { return lipgloss.Color("214") }
func badColor() lipgloss.Color { return lipgloss.Color("196") }

// scoreColor picks a color for a 0-100 score.
func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= goodScore:
		return goodColor()
	case score >= fairScore:
		return warnColor()
	default:
		return badColor()
	}
}

// Score bands used for coloring.
const (
	goodScore = 70.0
	fairScore = 40.0
)

// styler renders headings, boxed with lipgloss on a terminal and underlined
// plain text otherwise.
type styler struct {
	styled bool
}

func newStyler(w io.Writer) styler {
	return styler{styled: isWriterTerminal(w)}
}

func (s styler) title(text string) string {
	if !s.styled {
		return text + "\n" + underline(text, '=')
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor()).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor()).
		Padding(0, 1).
		Render(text)
}

func (s styler) section(text string) string {
	if !s.styled {
		return text + "\n" + underline(text, '-')
	}
	return lipgloss.NewStyle().Bold(true).Foreground(sectionColor()).Render(text)
}

func (s styler) score(text string, score float64) string {
	if !s.styled {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(text)
}

func underline(text string, r rune) string {
	n := lipgloss.Width(text)
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
