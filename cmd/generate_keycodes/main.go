// Command generate_keycodes regenerates the KEY_* tables of keycodes.h.
//
// Every "// KEY definitions for <section>" ... "// end of KEY definitions"
// region of the header is replaced by freshly generated #define lines; the
// rest of the file is left alone. By default the header is
// ../src/keycodes.h relative to the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	getopt "github.com/pborman/getopt/v2"
	"github.com/pkg/errors"

	"github.com/elijahmorgan/srctools/internal/config"
	"github.com/elijahmorgan/srctools/internal/keycodes"
	"github.com/elijahmorgan/srctools/internal/logutil"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	set := getopt.New()
	set.SetProgram("generate_keycodes")
	set.SetParameters("")
	optConfig := set.StringLong("config", 'c', "", "Configuration file")
	optFile := set.StringLong("file", 'f', "", "Header to regenerate")
	optList := set.BoolLong("list", 'l', "List the sections of the header")
	optCheck := set.BoolLong("check", 'n', "Fail if the header is out of date, without writing it")
	optDebug := set.BoolLong("debug", 'd', "Log debug output")
	optHelp := set.BoolLong("help", 'h', "Help")
	if err := set.Getopt(args, nil); err != nil {
		return err
	}

	if *optHelp {
		set.PrintUsage(stdout)
		return nil
	}
	if set.NArgs() > 0 {
		return errors.Errorf("unexpected arguments: %v", set.Args())
	}

	cfg, err := config.Load(*optConfig, ".")
	if err != nil {
		return err
	}
	logger, err := logutil.New(stderr, cfg.Log.Level, *optDebug)
	if err != nil {
		return err
	}

	header := cfg.HeaderPath(".")
	if *optFile != "" {
		header = *optFile
	}
	logger.Debug("header", "path", header)

	opts := keycodes.Options{
		SDLSection: cfg.Keycodes.SDLSection,
		SDLFlag:    cfg.Keycodes.SDLFlag,
		Logger:     logger,
	}

	switch {
	case *optList:
		return list(header, stdout)
	case *optCheck:
		stale, _, err := keycodes.CheckFile(header, opts)
		if err != nil {
			return err
		}
		if stale {
			return errors.Errorf("%s is out of date", header)
		}
		return nil
	default:
		_, err := keycodes.UpdateFile(header, opts)
		return err
	}
}

func list(header string, w io.Writer) error {
	f, err := os.Open(header)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", header)
	}
	defer f.Close()

	tables, err := keycodes.Inspect(f)
	if err != nil {
		return errors.Wrapf(err, "failed to inspect %s", header)
	}

	t := tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
	t.AddHeader("SECTION", "DEFINITIONS", "MAX ORDINAL", "TERMINATED")
	for _, table := range tables {
		t.AddLine(table.Name, len(table.Defines), table.MaxOrdinal(), table.Terminated)
	}
	t.Print()
	return nil
}
