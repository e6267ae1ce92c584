package testutils

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/mcuadros/go-defaults"
)

// TestingT is an interface that matches the methods we need from testing.T
type TestingT interface {
	Errorf(format string, args ...interface{})
}

// TextAssertOptions controls normalization applied before comparing.
// Table output from tabwriter pads cells with trailing spaces, so tests
// usually enable IgnoreTrailingWhitespace.
type TextAssertOptions struct {
	IgnoreTrailingWhitespace bool `default:"true"`
	TrimSpace                bool `default:"true"`
	EnableColors             bool `default:"false"`
}

// TextOption is a functional option for configuring TextAsserter
type TextOption func(*TextAssertOptions)

// TextAsserter compares multi-line command output and reports mismatches
// as a unified diff instead of two unreadable string dumps.
type TextAsserter struct {
	t       TestingT
	options TextAssertOptions
}

// NewTextAsserter creates a TextAsserter with default options.
func NewTextAsserter(t TestingT, opts ...TextOption) *TextAsserter {
	options := TextAssertOptions{}
	defaults.SetDefaults(&options)
	for _, opt := range opts {
		opt(&options)
	}
	return &TextAsserter{t: t, options: options}
}

// Assert compares actual text against expected text
func (ta *TextAsserter) Assert(actual, expected string) {
	if diff := ta.diff(actual, expected); diff != "" {
		ta.t.Errorf("Text assertion failed - unified diff:\n%s", diff)
	}
}

func (ta *TextAsserter) diff(actual, expected string) string {
	normalizedActual := ta.normalize(actual)
	normalizedExpected := ta.normalize(expected)
	if normalizedActual == normalizedExpected {
		return ""
	}

	edits := myers.ComputeEdits("", normalizedExpected, normalizedActual)
	unified := fmt.Sprint(gotextdiff.ToUnified("expected", "actual", normalizedExpected, edits))
	return ta.colorize(unified)
}

func (ta *TextAsserter) colorize(diff string) string {
	if !ta.options.EnableColors {
		return diff
	}

	red := color.New(color.FgRed)
	red.EnableColor()
	green := color.New(color.FgGreen)
	green.EnableColor()
	cyan := color.New(color.FgCyan)
	cyan.EnableColor()

	lines := strings.Split(diff, "\n")
	colorized := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "@@"):
			colorized = append(colorized, cyan.Sprint(line))
		case strings.HasPrefix(line, "-"):
			colorized = append(colorized, red.Sprint(line))
		case strings.HasPrefix(line, "+"):
			colorized = append(colorized, green.Sprint(line))
		default:
			colorized = append(colorized, line)
		}
	}
	return strings.Join(colorized, "\n")
}

func (ta *TextAsserter) normalize(text string) string {
	if ta.options.TrimSpace {
		text = strings.TrimSpace(text)
	}

	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if ta.options.IgnoreTrailingWhitespace {
			line = strings.TrimRight(line, " \t")
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// WithColors enables ANSI colors in diff output.
func WithColors(enable bool) TextOption {
	return func(opts *TextAssertOptions) {
		opts.EnableColors = enable
	}
}

// WithTrimSpace sets whether surrounding whitespace is stripped before
// comparing.
func WithTrimSpace(trim bool) TextOption {
	return func(opts *TextAssertOptions) {
		opts.TrimSpace = trim
	}
}
