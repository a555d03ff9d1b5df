package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/violet-to-doctrine/parser/internal/config"
	"github.com/violet-to-doctrine/parser/internal/export"
	"github.com/violet-to-doctrine/parser/internal/logger"
	"github.com/violet-to-doctrine/parser/internal/parser"
	"github.com/violet-to-doctrine/parser/internal/result"
)

func main() {
	input := flag.String("input", "", "Path to Violet class diagram file (or - for stdin)")
	output := flag.String("o", "output", "Output directory for rendered model files")
	format := flag.String("format", "", "Output format: json, yaml or hcl (default from DIAGRAM_EXPORT_FORMAT)")
	jsonOut := flag.Bool("json", false, "Output faults as JSON")
	strict := flag.Bool("strict", false, "Exit non-zero when non-fatal errors are reported")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: parser -input <file|-> [-o output] [-format json|yaml|hcl] [-json] [-strict]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	outFormat := cfg.ExportFormat
	if *format != "" {
		if outFormat, err = export.ParseFormat(*format); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	var data []byte
	if *input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	p := parser.New(parser.Options{
		MaxDocumentBytes: cfg.MaxDocumentBytes,
		MaxDepth:         cfg.MaxDepth,
		Logger:           logger.New(cfg.LogLevel),
	})
	res, err := p.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
	} else {
		printFaults(os.Stderr, res)
	}

	files, err := export.Render(res, outFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*output, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	for name, content := range files {
		path := filepath.Join(*output, name)
		if err := os.WriteFile(path, content, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "wrote", path)
	}

	if *strict && !res.Success {
		os.Exit(1)
	}
}

func printFaults(w io.Writer, res *result.ParseResult) {
	for _, e := range res.Errors {
		fmt.Fprintf(w, "ERROR [%s] %s\n", e.Subject, e.Message)
		if e.Suggestion != "" {
			fmt.Fprintf(w, "  suggestion: %s\n", e.Suggestion)
		}
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "WARN [%s] %s\n", warn.Subject, warn.Message)
	}
}
