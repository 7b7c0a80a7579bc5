// Package seq converts between delimited text and slices.
//
// Parsing never returns a nil slice: empty or whitespace-only text yields an
// empty result. Joining reports an absent result through its second return
// value when JoinOptions.NilIfEmpty is set.
package seq

import (
	"errors"
	"iter"
	"strconv"
	"strings"
)

// DefaultSeparator is used when ParseOptions.Separator is zero
const DefaultSeparator = ','

// numericSpace is the whitespace skipped around an integer field.
const numericSpace = " \t\n\v\f\r"

// ParseOptions controls how text is split into fields.
// The zero value splits on commas and drops empty fields.
type ParseOptions struct {
	Separator rune
	KeepEmpty bool
}

func (o ParseOptions) separator() string {
	if o.Separator == 0 {
		return string(DefaultSeparator)
	}
	return string(o.Separator)
}

// fields splits text; nil for blank text
func fields(text string, sep string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, sep)
}

// ParseInts parses every field of text as a base-10 int.
// Surrounding whitespace of a field is ignored; an optional sign is accepted.
//
// Examples:
//   - "123, 456, 789" -> [123 456 789]
//   - "1- 2 - 3" with Separator '-' -> [1 2 3]
//   - "" or "   " -> []
//   - "1,,2" -> ErrFormat (the empty field is not a number)
func ParseInts(text string, opts ParseOptions) ([]int, error) {
	parts := fields(text, opts.separator())
	result := make([]int, 0, len(parts))

	for i, part := range parts {
		n, err := parseField(i, part)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}

	return result, nil
}

// Ints is the lazy form of ParseInts. Fields are parsed as they are pulled;
// a bad field yields (0, err) once and ends the sequence.
func Ints(text string, opts ParseOptions) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i, part := range fields(text, opts.separator()) {
			n, err := parseField(i, part)
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(n, nil) {
				return
			}
		}
	}
}

func parseField(index int, field string) (int, error) {
	n, err := strconv.ParseInt(strings.Trim(field, numericSpace), 10, strconv.IntSize)
	if err == nil {
		return int(n), nil
	}

	cause := ErrFormat
	if errors.Is(err, strconv.ErrRange) {
		cause = ErrOverflow
	}
	return 0, &FieldError{Index: index, Field: field, Err: cause}
}

// ParseStrings splits text into untrimmed fields, dropping empty ones unless opts.KeepEmpty
func ParseStrings(text string, opts ParseOptions) []string {
	parts := fields(text, opts.separator())
	if opts.KeepEmpty {
		if parts == nil {
			return []string{}
		}
		return parts
	}

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Strings is the lazy form of ParseStrings
func Strings(text string, opts ParseOptions) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, part := range fields(text, opts.separator()) {
			if part == "" && !opts.KeepEmpty {
				continue
			}
			if !yield(part) {
				return
			}
		}
	}
}
