package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/danmuck/cardctl/internal/card"
	"github.com/danmuck/cardctl/internal/config"
	"github.com/danmuck/cardctl/internal/logging"
	"github.com/danmuck/cardctl/internal/server"
	"github.com/danmuck/cardctl/internal/wire"
)

type options struct {
	mode    string
	input   string
	output  string
	cfgPath string
	strict  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "check", "mode: check|normalize|serve")
	flag.StringVar(&opts.input, "in", "", "input vCard file (default stdin)")
	flag.StringVar(&opts.output, "out", "", "output file for normalize (default stdout)")
	flag.StringVar(&opts.cfgPath, "config", "", "server config path (serve mode)")
	flag.BoolVar(&opts.strict, "strict", true, "validate cards before writing output")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "cardctl: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	switch opts.mode {
	case "check":
		return runCheck(opts)
	case "normalize":
		return runNormalize(opts)
	case "serve":
		return runServe(opts)
	default:
		return fmt.Errorf("unknown mode: %s", opts.mode)
	}
}

func runCheck(opts options) error {
	text, err := readInput(opts.input)
	if err != nil {
		return err
	}
	cards, loose := card.ParseAll(text)

	warnColor := color.New(color.FgYellow)
	okColor := color.New(color.FgGreen)
	failColor := color.New(color.FgRed)

	total := len(loose)
	printWarnings(warnColor, "input", loose)
	for i, one := range cards {
		label := fmt.Sprintf("card %d (version %s)", i+1, one.Version)
		printWarnings(warnColor, label, one.Warnings)
		total += len(one.Warnings)
		if opts.strict {
			if err := card.Validate(one); err != nil {
				failColor.Fprintf(os.Stderr, "%s: %v\n", label, err)
				return fmt.Errorf("validation failed")
			}
		}
	}
	okColor.Fprintf(os.Stderr, "%d card(s), %d warning(s)\n", len(cards), total)
	return nil
}

func runNormalize(opts options) error {
	text, err := readInput(opts.input)
	if err != nil {
		return err
	}
	cards, _ := card.ParseAll(text)
	if len(cards) == 0 {
		return card.ErrNoCard
	}

	var out string
	for _, one := range cards {
		if opts.strict {
			encoded, err := card.Encode(one)
			if err != nil {
				return err
			}
			out += encoded
			continue
		}
		out += card.EncodeUnchecked(one)
	}
	return writeOutput(opts.output, out)
}

func runServe(opts options) error {
	logging.ConfigureRuntime()
	cfg := config.DefaultServerConfig()
	if opts.cfgPath != "" {
		loaded, err := config.LoadServerConfig(opts.cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	return server.New(cfg).Run()
}

func printWarnings(c *color.Color, label string, warnings []wire.Warning) {
	for _, w := range warnings {
		if w.Line > 0 {
			c.Fprintf(os.Stderr, "%s: line %d: %s\n", label, w.Line, w.Message)
			continue
		}
		c.Fprintf(os.Stderr, "%s: %s\n", label, w.Message)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
