// Package prompt reads validated numbers from an interactive console.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/tphakala/qwell/internal/errors"
	"github.com/tphakala/qwell/internal/logger"
)

// Sentinel errors returned by Validate, wrapped in an EnhancedError.
var (
	ErrParse        = errors.NewStd("value is not a number")
	ErrBelowMinimum = errors.NewStd("value is below the minimum")
	ErrAboveMaximum = errors.NewStd("value is above the maximum")
	ErrNotInteger   = errors.NewStd("value is not an integer")
)

// Bounds restricts an acquired value to (Min, Max]. A nil Max leaves the
// value unbounded above. Integer additionally rejects fractional values.
type Bounds struct {
	Min     float64
	Max     *float64
	Integer bool
}

// AtMost returns Bounds with the given exclusive minimum and inclusive maximum.
func AtMost(minimum, maximum float64) Bounds {
	return Bounds{Min: minimum, Max: &maximum}
}

// Above returns Bounds with only an exclusive minimum.
func Above(minimum float64) Bounds {
	return Bounds{Min: minimum}
}

// inputError carries the message shown to the user and the sentinel used
// for errors.Is.
type inputError struct {
	sentinel error
	message  string
}

func (e *inputError) Error() string { return e.message }
func (e *inputError) Unwrap() error { return e.sentinel }

// Validate parses one attempt and checks it against b. The returned error's
// message is the text shown after "Error: " at the console.
func Validate(text string, b Bounds) (float64, error) {
	trimmed := strings.TrimSpace(text)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || hasHexPrefix(trimmed) || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.New(&inputError{
			sentinel: ErrParse,
			message:  "could not convert string to float: " + quoteInput(text),
		}).
			Component("prompt").
			Category(errors.CategoryInputParsing).
			Context("input", text).
			Build()
	}

	if value <= b.Min {
		return 0, errors.New(&inputError{
			sentinel: ErrBelowMinimum,
			message:  fmt.Sprintf("must be greater than %s.", formatBound(b.Min)),
		}).
			Component("prompt").
			Category(errors.CategoryValidation).
			Context("min", b.Min).
			Build()
	}

	if b.Max != nil && value > *b.Max {
		return 0, errors.New(&inputError{
			sentinel: ErrAboveMaximum,
			message:  fmt.Sprintf("must be less than %s.", formatBound(*b.Max)),
		}).
			Component("prompt").
			Category(errors.CategoryValidation).
			Context("max", *b.Max).
			Build()
	}

	if b.Integer && value != math.Trunc(value) {
		return 0, errors.New(&inputError{
			sentinel: ErrNotInteger,
			message:  "must be an integer.",
		}).
			Component("prompt").
			Category(errors.CategoryValidation).
			Context("input", trimmed).
			Build()
	}

	return value, nil
}

// hasHexPrefix reports whether s is a hexadecimal literal, which ParseFloat
// accepts but decimal console input does not.
func hasHexPrefix(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// quoteInput renders s as a quoted literal for error messages: single quotes unless s contains a single quote and no double quote, with
// backslash escapes for the quote, backslash and non-printable runes.
func quoteInput(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Acquirer prompts on out and reads answers line by line from in.
type Acquirer struct {
	in  *bufio.Reader
	out io.Writer
	log logger.Logger
}

// NewAcquirer creates an Acquirer. log may be nil.
func NewAcquirer(in io.Reader, out io.Writer, log logger.Logger) *Acquirer {
	if log == nil {
		log = logger.NewSlogLogger(io.Discard, logger.LogLevelError)
	}
	return &Acquirer{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// GrabNumber prints prompt and reads answers until one passes Validate.
// Rejected answers are reported as "Error: <reason>" and the prompt is
// repeated. It fails only when input ends, reading fails, or ctx is done.
func (a *Acquirer) GrabNumber(ctx context.Context, prompt string, b Bounds) (float64, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, errors.New(err).
				Component("prompt").
				Category(errors.CategoryCancellation).
				Build()
		}

		if _, err := fmt.Fprint(a.out, prompt); err != nil {
			return 0, errors.New(fmt.Errorf("writing prompt: %w", err)).
				Component("prompt").
				Category(errors.CategoryFileIO).
				Build()
		}

		line, readErr := a.readLine()
		if readErr != nil && line == "" {
			return 0, errors.New(fmt.Errorf("reading input: %w", readErr)).
				Component("prompt").
				Category(errors.CategoryFileIO).
				Context("attempt", attempt).
				Build()
		}

		value, err := Validate(line, b)
		if err != nil {
			a.log.Debug("input rejected",
				logger.Int("attempt", attempt),
				logger.Error(err))
			if _, werr := fmt.Fprintf(a.out, "Error: %s\n", err); werr != nil {
				return 0, errors.New(fmt.Errorf("writing error message: %w", werr)).
					Component("prompt").
					Category(errors.CategoryFileIO).
					Build()
			}
			if readErr != nil {
				// last unterminated line was invalid and nothing follows
				return 0, errors.New(fmt.Errorf("reading input: %w", readErr)).
					Component("prompt").
					Category(errors.CategoryFileIO).
					Context("attempt", attempt).
					Build()
			}
			continue
		}

		a.log.Debug("input accepted",
			logger.Int("attempt", attempt),
			logger.Float64("value", value))
		return value, nil
	}
}

// WaitForKey prints prompt and blocks until a line is entered or input ends.
func (a *Acquirer) WaitForKey(prompt string) error {
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return errors.New(fmt.Errorf("writing prompt: %w", err)).
			Component("prompt").
			Category(errors.CategoryFileIO).
			Build()
	}

	if _, err := a.readLine(); err != nil && !errors.Is(err, io.EOF) {
		return errors.New(fmt.Errorf("reading input: %w", err)).
			Component("prompt").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned together with io.EOF.
func (a *Acquirer) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}
