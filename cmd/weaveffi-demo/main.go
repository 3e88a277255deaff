// Command weaveffi-demo is a sample consumer of the weaveffi libraries:
// it parses and validates an IDL file and, optionally, runs codegen
// against it. It is a development aid, not the product CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/weaveffi/weaveffi/codegen"
	"github.com/weaveffi/weaveffi/ir"
	"github.com/weaveffi/weaveffi/parse"
	"github.com/weaveffi/weaveffi/validate"
)

func main() {
	var (
		idlFile     = flag.String("idl", "", "Path to an IDL file (.yaml, .yml, .json, or .toml)")
		format      = flag.String("format", "", "Override format detection (yaml|json|toml)")
		outDir      = flag.String("out", "", "Output directory for generated bindings")
		target      = flag.String("target", "all", "Comma-separated targets to generate (c,swift,android,node,wasm) or \"all\"")
		list        = flag.Bool("list", false, "Parse, validate, and list modules/functions, then exit")
		verbose     = flag.Bool("v", false, "Enable verbose (debug) logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *idlFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: weaveffi-demo -idl <file> -list")
		fmt.Fprintln(os.Stderr, "       weaveffi-demo -idl <file> -out <dir> [-target c,swift,...]")
		fmt.Fprintln(os.Stderr, "       weaveffi-demo -idl <file> -out <dir> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	parse.SetLogger(log)
	validate.SetLogger(log)
	codegen.SetLogger(log)
	defer syncLoggers()

	if *interactive {
		if err := runInteractive(*idlFile, *format, *outDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*idlFile, *format, *outDir, *target, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// syncLoggers flushes every package logger on shutdown. Their Sync
// errors are combined with multierr and the combined error is ignored.
func syncLoggers() {
	_ = multierr.Combine(
		parse.Logger().Sync(),
		validate.Logger().Sync(),
		codegen.Logger().Sync(),
	)
}

func detectFormat(path, override string) string {
	if override != "" {
		return override
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

func loadAndValidate(idlFile, format string) (*ir.Api, error) {
	data, err := os.ReadFile(idlFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", idlFile, err)
	}

	fmtName := detectFormat(idlFile, format)
	api, err := parse.Parse(data, fmtName)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := validate.Validate(api); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return api, nil
}

func run(idlFile, format, outDir, targetSpec string, listOnly bool) error {
	api, err := loadAndValidate(idlFile, format)
	if err != nil {
		return err
	}

	fmt.Printf("API version %s: %d module(s)\n", api.Version, len(api.Modules))
	for _, m := range api.Modules {
		fmt.Printf("  %s (%d function(s))\n", m.Name, len(m.Functions))
		for _, f := range m.Functions {
			printFunctionSummary(f)
		}
	}

	if listOnly {
		return nil
	}

	if outDir == "" {
		return fmt.Errorf("-out is required unless -list is given")
	}

	o, err := orchestratorFor(targetSpec)
	if err != nil {
		return err
	}

	fmt.Printf("\nGenerating %d target(s) into %s...\n", len(o.Generators()), outDir)
	if err := o.Run(api, outDir); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Println("done.")
	return nil
}

func printFunctionSummary(f ir.Function) {
	var params []string
	for _, p := range f.Params {
		params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Ty))
	}
	ret := "void"
	if f.Returns != nil {
		ret = string(*f.Returns)
	}
	async := ""
	if f.IsAsync {
		async = " async"
	}
	fmt.Printf("    %s(%s) -> %s%s\n", f.Name, strings.Join(params, ", "), ret, async)
}

// orchestratorFor builds an Orchestrator running only the requested
// targets, in the canonical order Default registers them, or every
// target when targetSpec is "all".
func orchestratorFor(targetSpec string) (*codegen.Orchestrator, error) {
	all := codegen.Default()
	if targetSpec == "all" {
		return all, nil
	}

	wanted := make(map[string]bool)
	for _, t := range strings.Split(targetSpec, ",") {
		wanted[strings.TrimSpace(t)] = true
	}

	var selected []codegen.Generator
	for _, g := range all.Generators() {
		if wanted[g.Name()] {
			selected = append(selected, g)
			delete(wanted, g.Name())
		}
	}
	if len(wanted) > 0 {
		var unknown []string
		for t := range wanted {
			unknown = append(unknown, t)
		}
		return nil, fmt.Errorf("unknown target(s): %s", strings.Join(unknown, ", "))
	}
	return codegen.NewOrchestrator(selected...), nil
}
