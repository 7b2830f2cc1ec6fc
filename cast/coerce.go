package cast

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/viant/toolbox"
)

// ErrParse is the sentinel every date coercion failure unwraps to.
var ErrParse = errors.New("cannot coerce value to date")

// ParseError reports a raw value that no layout could parse.
type ParseError struct {
	Value   any
	Layouts []string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: %v (%T)", ErrParse, e.Value, e.Value)
	if len(e.Layouts) > 0 {
		msg += fmt.Sprintf(", tried layouts %q", e.Layouts)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns ErrParse so callers can match with errors.Is.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// Coercer converts a non-nil raw attribute value into a time.Time.
type Coercer interface {
	// Coerce tries layouts in order before any defaults of its own.
	Coerce(raw any, layouts ...string) (time.Time, error)
}

// DefaultLayouts are tried after the layouts requested by the caller.
var DefaultLayouts = []string{
	time.DateTime,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// DefaultCoercer is used when no coercer is configured.
var DefaultCoercer Coercer = NewCoercer()

// LayoutCoercer coerces values through toolbox.ToTime with a list of layouts.
type LayoutCoercer struct {
	Layouts []string
}

// NewCoercer creates a coercer with DefaultLayouts appended to layouts.
func NewCoercer(layouts ...string) *LayoutCoercer {
	all := make([]string, 0, len(layouts)+len(DefaultLayouts))
	all = append(all, layouts...)
	all = append(all, DefaultLayouts...)

	return &LayoutCoercer{Layouts: all}
}

// Coerce implements Coercer.
func (c *LayoutCoercer) Coerce(raw any, layouts ...string) (time.Time, error) {
	candidates := c.candidates(layouts)

	switch actual := raw.(type) {
	case nil:
		return time.Time{}, &ParseError{Value: raw}
	case time.Time:
		return actual, nil
	case *time.Time:
		if actual == nil {
			return time.Time{}, &ParseError{Value: raw}
		}

		return *actual, nil
	case []byte:
		return c.coerceString(string(actual), candidates)
	case string:
		return c.coerceString(actual, candidates)
	case *string:
		if actual == nil {
			return time.Time{}, &ParseError{Value: raw}
		}

		return c.coerceString(*actual, candidates)
	}

	if ts, ok := unixTime(raw); ok {
		return ts, nil
	}

	return time.Time{}, &ParseError{Value: raw}
}

// unixTime reads integer and float values as unix timestamps in seconds.
// Fractional seconds are kept; unsigned values beyond int64 are rejected.
func unixTime(raw any) (time.Time, bool) {
	switch n := raw.(type) {
	case int:
		return time.Unix(int64(n), 0), true
	case int32:
		return time.Unix(int64(n), 0), true
	case int64:
		return time.Unix(n, 0), true
	case uint32:
		return time.Unix(int64(n), 0), true
	case uint64:
		if n > math.MaxInt64 {
			return time.Time{}, false
		}

		return time.Unix(int64(n), 0), true
	case float32:
		return unixFloat(float64(n))
	case float64:
		return unixFloat(n)
	default:
		return time.Time{}, false
	}
}

func unixFloat(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return time.Time{}, false
	}

	sec := math.Trunc(f)

	return time.Unix(int64(sec), int64(math.Round((f-sec)*1e9))), true
}

func (c *LayoutCoercer) coerceString(raw string, layouts []string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, &ParseError{Value: raw, Layouts: layouts}
	}

	var lastErr error

	for _, layout := range layouts {
		ts, err := toolbox.ToTime(value, layout)
		if err == nil && ts != nil {
			return *ts, nil
		}

		lastErr = err
	}

	return time.Time{}, &ParseError{Value: raw, Layouts: layouts, Err: lastErr}
}

// candidates returns requested layouts followed by the coercer's own,
// without duplicates or blanks.
func (c *LayoutCoercer) candidates(requested []string) []string {
	seen := make(map[string]struct{}, len(requested)+len(c.Layouts))
	result := make([]string, 0, len(requested)+len(c.Layouts))

	for _, group := range [][]string{requested, c.Layouts} {
		for _, layout := range group {
			if layout == "" {
				continue
			}

			if _, dup := seen[layout]; dup {
				continue
			}

			seen[layout] = struct{}{}
			result = append(result, layout)
		}
	}

	return result
}
