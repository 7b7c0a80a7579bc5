package main

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/krmcbride/sequtil/pkg/config"
	"github.com/krmcbride/sequtil/pkg/request"
	"github.com/krmcbride/sequtil/pkg/seq"
	"github.com/krmcbride/sequtil/pkg/shellword"
)

// join --input values
const (
	inputLines = "lines"
	inputShell = "shell"
	inputJSON  = "json"
)

// join --map values
const (
	mapNone  = "none"
	mapTrim  = "trim"
	mapUpper = "upper"
	mapLower = "lower"
	mapQuote = "quote"
)

// loadConfig reads the config file and applies any flags set on the command line.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override from flags
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("sep") {
		cfg.Separator = c.String("sep")
	}
	if c.IsSet("keep-empty") {
		cfg.KeepEmpty = c.Bool("keep-empty")
	}
	if c.IsSet("space") {
		cfg.SpaceAfterComma = c.Bool("space")
	}
	if c.IsSet("null-if-empty") {
		cfg.NullIfEmpty = c.Bool("null-if-empty")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Printf("config: %+v", *cfg)
	return cfg, nil
}

// readText returns the single TEXT argument, or stdin without its final newline.
func readText(c *cli.Context) (string, error) {
	switch c.NArg() {
	case 0:
	case 1:
		return c.Args().First(), nil
	default:
		return "", fmt.Errorf("expected at most one TEXT argument, got %d (quote the text)", c.NArg())
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func parseInts(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	text, err := readText(c)
	if err != nil {
		return err
	}

	ints, err := seq.ParseInts(text, cfg.ParseOptions())
	if err != nil {
		return fmt.Errorf("failed to parse integers: %w", err)
	}
	logger.Printf("parsed %d integers", len(ints))
	return newPrinter(c.App.Writer, cfg).ints(ints)
}

func parseStrings(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	text, err := readText(c)
	if err != nil {
		return err
	}

	fields := seq.ParseStrings(text, cfg.ParseOptions())
	logger.Printf("parsed %d fields", len(fields))
	return newPrinter(c.App.Writer, cfg).strings(fields)
}

func fixSpacing(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	text, err := readText(c)
	if err != nil {
		return err
	}
	return newPrinter(c.App.Writer, cfg).text(seq.NormalizeCommaSpacing(text), true)
}

func joinItems(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	items, err := readItems(c)
	if err != nil {
		return err
	}
	logger.Printf("read %d items", len(items))

	var keep func(any) bool
	if pattern := c.String("match"); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid --match pattern: %w", err)
		}
		keep = func(v any) bool { return re.MatchString(seq.Format(v)) }
	}

	// quote can fail; the first error is kept and reported after the join.
	var projectErr error
	project, err := projection(c.String("map"), &projectErr)
	if err != nil {
		return err
	}

	text, ok := seq.JoinFunc(items, keep, project, cfg.JoinOptions())
	if projectErr != nil {
		return projectErr
	}
	return newPrinter(c.App.Writer, cfg).text(text, ok)
}

// readItems returns the ITEM arguments, or stdin decoded per --input.
func readItems(c *cli.Context) ([]any, error) {
	if c.NArg() > 0 {
		return toAny(c.Args().Slice()), nil
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	switch mode := c.String("input"); mode {
	case inputLines:
		text := strings.TrimSuffix(string(data), "\n")
		if text == "" {
			return nil, nil
		}
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
		return toAny(lines), nil
	case inputShell:
		fields, err := shellword.Split(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to split stdin: %w", err)
		}
		return toAny(fields), nil
	case inputJSON:
		var items []any
		decoder := json.NewDecoder(strings.NewReader(string(data)))
		decoder.UseNumber()
		if err := decoder.Decode(&items); err != nil {
			return nil, fmt.Errorf("failed to decode JSON array: %w", err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unknown --input %q (expected lines, shell or json)", mode)
	}
}

func projection(name string, errp *error) (func(any) string, error) {
	switch name {
	case mapNone, "":
		return nil, nil
	case mapTrim:
		return func(v any) string { return strings.TrimSpace(seq.Format(v)) }, nil
	case mapUpper:
		return func(v any) string { return strings.ToUpper(seq.Format(v)) }, nil
	case mapLower:
		return func(v any) string { return strings.ToLower(seq.Format(v)) }, nil
	case mapQuote:
		return func(v any) string {
			quoted, err := shellword.Quote(seq.Format(v))
			if err != nil && *errp == nil {
				*errp = err
			}
			return quoted
		}, nil
	default:
		return nil, fmt.Errorf("unknown --map %q (expected none, trim, upper, lower or quote)", name)
	}
}

func execRequest(c *cli.Context) error {
	req, err := request.ReadRequest(c.App.Reader)
	if err != nil {
		return err
	}
	logger.Printf("request op=%s", req.Op)

	resp := request.Execute(*req)
	if err := request.WriteResponse(c.App.Writer, resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return fmt.Errorf("%s failed: %s", req.Op, resp.Error)
	}
	return nil
}

func toAny(values []string) []any {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return items
}
