package seq

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// JoinOptions controls how items are joined
type JoinOptions struct {
	// SpaceAfterComma joins with ", " instead of ",".
	SpaceAfterComma bool
	// NilIfEmpty makes an empty source report no result (ok == false)
	// instead of the empty string.
	NilIfEmpty bool
}

func (o JoinOptions) delimiter() string {
	if o.SpaceAfterComma {
		return ", "
	}
	return ","
}

// Join joins items with commas. ok is false only for an empty source with NilIfEmpty set
func Join[T any](items []T, opts JoinOptions) (string, bool) {
	return JoinFunc[T, T](items, nil, nil, opts)
}

// JoinWhere joins the items keep returns true for.
// The empty check applies to items before filtering.
func JoinWhere[T any](items []T, keep func(T) bool, opts JoinOptions) (string, bool) {
	return JoinFunc[T, T](items, keep, nil, opts)
}

// JoinFunc filters items with keep, maps the survivors with project and
// joins the string form of the results. A nil keep retains every item; a
// nil project joins the items themselves.
func JoinFunc[T, R any](items []T, keep func(T) bool, project func(T) R, opts JoinOptions) (string, bool) {
	return JoinSeq(slices.Values(items), keep, project, opts)
}

// JoinSeq is JoinFunc over an iterator (maps.Keys etc); nil counts as empty
func JoinSeq[T, R any](items iter.Seq[T], keep func(T) bool, project func(T) R, opts JoinOptions) (string, bool) {
	if items == nil {
		return emptyResult(opts)
	}

	var (
		b     strings.Builder
		seen  bool
		count int
	)
	delim := opts.delimiter()

	for item := range items {
		seen = true
		if keep != nil && !keep(item) {
			continue
		}
		if count > 0 {
			b.WriteString(delim)
		}
		if project != nil {
			b.WriteString(Format(project(item)))
		} else {
			b.WriteString(Format(item))
		}
		count++
	}

	if !seen {
		return emptyResult(opts)
	}
	return b.String(), true
}

func emptyResult(opts JoinOptions) (string, bool) {
	return "", !opts.NilIfEmpty
}

// Format returns the string form Join uses for v: strings as-is, then
// fmt.Stringer, error and finally fmt.Sprint. Nil values become "".
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		if isNil(x) {
			return ""
		}
		return x.String()
	case error:
		if isNil(x) {
			return ""
		}
		return x.Error()
	}
	if isNil(v) {
		return ""
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
