// Command mipsasm is the CLI collaborator for the two-pass MIPS I
// assembler core: flag parsing, file I/O, help text, and exit codes
// (spec.md section 1 and section 6). None of this file participates
// in lexing, symbol resolution, or encoding; it only calls into
// assembler.Assemble and writes the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/config"
	"github.com/cwilkes/mipsasm/listing"
	"github.com/cwilkes/mipsasm/tools"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mipsasm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		verbose     = fs.Bool("v", false, "enable verbose diagnostics")
		verboseLong = fs.Bool("verbose", false, "enable verbose diagnostics")
		help        = fs.Bool("h", false, "show this help message")
		helpLong    = fs.Bool("help", false, "show this help message")
		outPath     = fs.String("o", "", "output file path")
		layout      = fs.Bool("layout", false, "lay TEXT/DATA out at their virtual addresses with zero-fill between them")
		browse      = fs.Bool("browse", false, "open a read-only listing browser after a successful assembly")
		dumpSymbols = fs.Bool("dump-symbols", false, "print the resolved symbol table after a successful assembly")
		configPath  = fs.String("config", "", "path to a mipsasm.toml config file (default: none, reference defaults apply)")
		showVersion = fs.Bool("version", false, "show version information")
	)
	fs.Usage = func() { printHelp(fs) }

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *showVersion {
		fmt.Printf("mipsasm %s\n", Version)
		return 0
	}
	if *help || *helpLong {
		printHelp(fs)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printHelp(fs)
		return 1
	}
	inputPath := rest[0]

	outputPath := *outPath
	if outputPath == "" && len(rest) > 1 {
		outputPath = rest[1]
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFrom(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if outputPath == "" {
		outputPath = cfg.Output.DefaultPath
	}

	source, err := os.ReadFile(inputPath) // #nosec G304 -- user-supplied input path, same as any compiler CLI
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", inputPath, err)
		return 1
	}

	verboseMode := *verbose || *verboseLong
	if verboseMode {
		fmt.Printf("Assembling %s (%d bytes)\n", inputPath, len(source))
	}

	result, err := assembler.Assemble(string(source), assembler.Options{
		TextBase: cfg.TextBaseAddr(),
		DataBase: cfg.DataBaseAddr(),
		Layout:   *layout || cfg.Layout.Layout,
		Verbose:  verboseMode,
		Limits:   cfg.ToLimits(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error:\n%v\n", err)
		return 1
	}

	if result.Warnings != nil {
		if w := result.Warnings.PrintWarnings(); w != "" {
			fmt.Fprint(os.Stderr, w)
		}
	}

	if err := os.WriteFile(outputPath, result.Output, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write %s: %v\n", outputPath, err)
		return 1
	}

	if verboseMode {
		fmt.Printf("Wrote %d bytes to %s (TEXT %d, DATA %d)\n",
			len(result.Output), outputPath, result.TextSize, result.DataSize)
	}

	if *dumpSymbols || cfg.Output.DumpSymbols {
		fmt.Print(tools.XRefReport(tools.CrossReference(&result)))
	}

	if *browse {
		if err := listing.NewBrowser(&result).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running listing browser: %v\n", err)
			return 1
		}
	}

	return 0
}

func printHelp(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `mipsasm - a two-pass MIPS I assembler

Usage: mipsasm [-v|--verbose] [-h|--help] [-o OUT] [-layout] [-browse]
               [-dump-symbols] [-config PATH] INPUT [OUT]

Assembles a subset of 32-bit big-endian MIPS I assembly text into a
raw binary image of concatenated instruction words and data bytes.

Options:
`)
	fs.PrintDefaults()
}
