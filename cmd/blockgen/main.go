package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/woozymasta/blockgen"
	"github.com/woozymasta/blockgen/internal/driver"
)

// failureFormat is the single line printed to stdout when generation fails.
const failureFormat = "Failed to generate %s, you're probably missing texture files.\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the generator and returns the process exit status.
// The failure line goes to stdout, log entries to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		root       string
		configFile string
		input      string
		output     string
		collect    bool
		lint       bool
		verbose    bool
	)

	fs := flag.NewFlagSet("blockgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&root, "root", ".", "Directory the input, output and texture paths are relative to")
	fs.StringVar(&configFile, "config", "", "TOML config file (default: <root>/"+driver.DefaultConfigFile+")")
	fs.StringVar(&input, "input", "", "Block list file (default: blocks.txt)")
	fs.StringVar(&output, "output", "", "Generated header (default: src/block.h)")
	fs.BoolVar(&collect, "collect", false, "Report every missing texture instead of stopping at the first")
	fs.BoolVar(&lint, "lint", false, "Validate block names and textures without writing the header")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logrus.New()
	log.Out = stderr
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.InfoLevel
	if verbose {
		log.Level = logrus.DebugLevel
	}

	if configFile == "" {
		configFile = filepath.Join(root, driver.DefaultConfigFile)
	}
	conf, err := driver.ReadConfig(configFile)
	if err != nil {
		log.Error(err)
		return 1
	}

	// Flags win over the config file.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["root"] || conf.Root == "" {
		conf.Root = root
	}
	if input != "" {
		conf.Input = input
	}
	if output != "" {
		conf.Output = output
	}
	if set["collect"] {
		conf.CollectMissing = collect
	}

	d := driver.New(conf, log, nil)
	if lint {
		return runLint(d, log)
	}

	if err := d.Run(); err != nil {
		var missing *blockgen.MissingTextureError
		if errors.As(err, &missing) {
			log.Error(missing)
		}
		log.WithError(err).Debug("run failed")
		fmt.Fprintf(stdout, failureFormat, filepath.ToSlash(conf.Output))
		return 1
	}
	return 0
}

// runLint prints every issue and fails on error-level ones.
func runLint(d *driver.Driver, log *logrus.Logger) int {
	issues, err := d.Lint()
	if err != nil {
		log.Error(err)
		return 1
	}
	for _, issue := range issues {
		if issue.Level == blockgen.IssueError {
			log.Error(issue.String())
		} else {
			log.Warn(issue.String())
		}
	}
	if blockgen.HasErrors(issues) {
		return 1
	}
	return 0
}
