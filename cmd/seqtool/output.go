package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/krmcbride/sequtil/pkg/config"
	"github.com/krmcbride/sequtil/pkg/seq"
	"github.com/krmcbride/sequtil/pkg/shellword"
)

// printer writes command results in the configured format
type printer struct {
	w        io.Writer
	format   string
	nullText string
}

func newPrinter(w io.Writer, cfg *config.Config) *printer {
	return &printer{w: w, format: cfg.Format, nullText: cfg.NullText}
}

func (p *printer) ints(values []int) error {
	if p.format == config.FormatJSON || p.format == config.FormatYAML {
		return p.encode(values)
	}

	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(v)
	}
	return p.list(fields)
}

func (p *printer) strings(fields []string) error {
	if p.format == config.FormatJSON || p.format == config.FormatYAML {
		return p.encode(fields)
	}
	return p.list(fields)
}

// text prints a single result; ok == false means there is no result.
func (p *printer) text(value string, ok bool) error {
	var v *string
	if ok {
		v = &value
	}

	switch p.format {
	case config.FormatJSON, config.FormatYAML:
		return p.encode(v)
	case config.FormatShell:
		if !ok {
			return p.nullLine()
		}
		quoted, err := shellword.Quote(value)
		if err != nil {
			return err
		}
		return p.line(quoted)
	default:
		if !ok {
			return p.nullLine()
		}
		return p.line(value)
	}
}

func (p *printer) list(fields []string) error {
	if p.format == config.FormatShell {
		if seq.IsEmpty(fields) {
			return nil
		}
		joined, err := shellword.Join(fields)
		if err != nil {
			return err
		}
		return p.line(joined)
	}

	for _, field := range fields {
		if err := p.line(field); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) nullLine() error {
	if p.nullText == "" {
		return nil
	}
	return p.line(p.nullText)
}

func (p *printer) line(s string) error {
	if _, err := fmt.Fprintln(p.w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (p *printer) encode(v any) error {
	var (
		data []byte
		err  error
	)
	if p.format == config.FormatYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.Marshal(v)
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
