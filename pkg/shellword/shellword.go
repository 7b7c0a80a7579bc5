// Package shellword converts between shell-quoted text and field lists.
package shellword

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrDynamic is returned when a word needs expansion to be resolved.
	ErrDynamic = errors.New("dynamic shell word")
	// ErrUnsupported is returned for anything other than a plain list of words.
	ErrUnsupported = errors.New("unsupported shell construct")
)

// Split parses text as shell words and returns them with quoting removed.
// Several statements (separated by newlines or ';') are concatenated.
//
// Examples:
//   - `a b c` -> ["a" "b" "c"]
//   - `'a b' "c d" e\ f` -> ["a b" "c d" "e f"]
//   - `$HOME` -> ErrDynamic
//   - `a | b` -> ErrUnsupported
func Split(text string) ([]string, error) {
	fields := []string{}
	if strings.TrimSpace(text) == "" {
		return fields, nil
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(text), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}

	for _, stmt := range file.Stmts {
		call, ok := stmt.Cmd.(*syntax.CallExpr)
		if !ok || len(call.Assigns) > 0 || len(stmt.Redirs) > 0 ||
			stmt.Negated || stmt.Background || stmt.Coprocess {
			return nil, fmt.Errorf("%w at %s", ErrUnsupported, stmt.Pos())
		}

		for _, word := range call.Args {
			if !IsStatic(word) {
				return nil, fmt.Errorf("%w at %s", ErrDynamic, word.Pos())
			}
			val, err := resolveWord(word)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve word at %s: %w", word.Pos(), err)
			}
			fields = append(fields, val)
		}
	}

	return fields, nil
}

// IsStatic reports whether word resolves without any expansion, i.e. it is
// built only from literals and quoted literals.
func IsStatic(word *syntax.Word) bool {
	if word == nil {
		return true
	}

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit, *syntax.SglQuoted:
		case *syntax.DblQuoted:
			for _, subPart := range p.Parts {
				if _, ok := subPart.(*syntax.Lit); !ok {
					return false
				}
			}
		default:
			// ParamExp, CmdSubst, ArithmExp, ProcSubst, ExtGlob, BraceExp
			return false
		}
	}

	return true
}

// resolveWord removes quoting and backslash escapes from a static word
func resolveWord(word *syntax.Word) (string, error) {
	var sb strings.Builder
	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(unescape(p.Value, ""))
		case *syntax.SglQuoted:
			if !p.Dollar {
				sb.WriteString(p.Value)
				continue
			}
			// $'...' needs ANSI-C escape handling
			val, err := expand.Literal(nil, &syntax.Word{Parts: []syntax.WordPart{p}})
			if err != nil {
				return "", err
			}
			sb.WriteString(val)
		case *syntax.DblQuoted:
			for _, subPart := range p.Parts {
				if lit, ok := subPart.(*syntax.Lit); ok {
					sb.WriteString(unescape(lit.Value, "$`\"\\\n"))
				}
			}
		}
	}
	return sb.String(), nil
}

// unescape drops backslashes; inside double quotes only those before a
// character in special are escapes. An escaped newline is a line continuation.
func unescape(s, special string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		next := s[i+1]
		if special != "" && !strings.ContainsRune(special, rune(next)) {
			sb.WriteByte(c)
			continue
		}
		i++
		if next != '\n' {
			sb.WriteByte(next)
		}
	}
	return sb.String()
}

// Quote quotes a field for bash
func Quote(field string) (string, error) {
	quoted, err := syntax.Quote(field, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("failed to quote %q: %w", field, err)
	}
	return quoted, nil
}

// Join quotes fields and joins them with spaces
func Join(fields []string) (string, error) {
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		q, err := Quote(field)
		if err != nil {
			return "", err
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}
