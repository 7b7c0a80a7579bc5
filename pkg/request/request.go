// Package request executes seq operations described as JSON.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/krmcbride/sequtil/pkg/seq"
)

// Operations understood by Execute.
const (
	OpInts       = "ints"
	OpStrings    = "strings"
	OpJoin       = "join"
	OpFixSpacing = "fix-spacing"
	OpIsEmpty    = "is-empty"
)

// Error kinds reported in Response.Kind.
const (
	KindFormat   = "format"
	KindOverflow = "overflow"
	KindInvalid  = "invalid"
)

// Request is one operation read from JSON input.
//
// Text feeds ints, strings and fix-spacing; Items feeds join and is-empty.
type Request struct {
	Op              string   `json:"op"`
	Text            string   `json:"text,omitempty"`
	Items           []string `json:"items,omitempty"`
	Separator       string   `json:"separator,omitempty"` // single character (default: ",")
	KeepEmpty       bool     `json:"keep_empty,omitempty"`
	SpaceAfterComma bool     `json:"space_after_comma,omitempty"`
	NullIfEmpty     bool     `json:"null_if_empty,omitempty"`
}

// Response is the JSON result of a Request. Exactly one of the result
// fields is set on success; Error and Kind are set on failure.
// text is only written for join and fix-spacing, where null means a join
// with no result.
type Response struct {
	Op      string   `json:"op"`
	Ints    []int    `json:"ints,omitzero"`
	Strings []string `json:"strings,omitzero"`
	Text    *string  `json:"text,omitempty"`
	Empty   *bool    `json:"empty,omitempty"`
	Error   string   `json:"error,omitempty"`
	Kind    string   `json:"kind,omitempty"`
}

// MarshalJSON writes text explicitly, null included, for text results
func (r Response) MarshalJSON() ([]byte, error) {
	type plain Response
	if r.Error != "" || (r.Op != OpJoin && r.Op != OpFixSpacing) {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		plain
		Text *string `json:"text"`
	}{plain(r), r.Text})
}

// ReadRequest reads and parses a request
func ReadRequest(r io.Reader) (*Request, error) {
	var req Request
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	return &req, nil
}

// WriteResponse writes the response as JSON
func WriteResponse(w io.Writer, resp Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// Execute runs the request, reporting failures in the response
func Execute(req Request) Response {
	resp := Response{Op: req.Op}

	opts, err := req.parseOptions()
	if err != nil {
		return resp.fail(err, KindInvalid)
	}

	switch req.Op {
	case OpInts:
		ints, err := seq.ParseInts(req.Text, opts)
		if err != nil {
			return resp.fail(err, errorKind(err))
		}
		resp.Ints = ints
	case OpStrings:
		resp.Strings = seq.ParseStrings(req.Text, opts)
	case OpJoin:
		text, ok := seq.Join(req.Items, seq.JoinOptions{
			SpaceAfterComma: req.SpaceAfterComma,
			NilIfEmpty:      req.NullIfEmpty,
		})
		if ok {
			resp.Text = &text
		}
	case OpFixSpacing:
		text := seq.NormalizeCommaSpacing(req.Text)
		resp.Text = &text
	case OpIsEmpty:
		empty := seq.IsEmpty(req.Items)
		resp.Empty = &empty
	default:
		return resp.fail(fmt.Errorf("unknown op %q", req.Op), KindInvalid)
	}

	return resp
}

func (r *Request) parseOptions() (seq.ParseOptions, error) {
	opts := seq.ParseOptions{KeepEmpty: r.KeepEmpty}
	if r.Separator == "" {
		return opts, nil
	}
	if utf8.RuneCountInString(r.Separator) != 1 {
		return opts, fmt.Errorf("separator must be a single character, got %q", r.Separator)
	}
	opts.Separator, _ = utf8.DecodeRuneInString(r.Separator)
	return opts, nil
}

func (r Response) fail(err error, kind string) Response {
	r.Error = err.Error()
	r.Kind = kind
	return r
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, seq.ErrOverflow):
		return KindOverflow
	case errors.Is(err, seq.ErrFormat):
		return KindFormat
	}
	return KindInvalid
}
