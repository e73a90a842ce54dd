// Command src_to7bits converts 8-bit C sources (Latin-1 characters in
// literals) to 7-bit sources using escape sequences. Characters inside
// comments are left as they are.
//
// Usage:
//
//	src_to7bits <file.c> ... <file.c>
//
// Every file that needed escaping is replaced by its translation and the
// original is kept next to it with an .orig suffix.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	getopt "github.com/pborman/getopt/v2"

	"github.com/elijahmorgan/srctools/internal/config"
	"github.com/elijahmorgan/srctools/internal/logutil"
	"github.com/elijahmorgan/srctools/internal/paths"
	"github.com/elijahmorgan/srctools/internal/sevenbit"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	prog := filepath.Base(args[0])

	set := getopt.New()
	set.SetProgram(prog)
	set.SetParameters("<file.c> ... <file.c>")
	optConfig := set.StringLong("config", 'c', "", "Configuration file")
	optDebug := set.BoolLong("debug", 'd', "Log debug output")
	optHelp := set.BoolLong("help", 'h', "Help")
	if err := set.Getopt(args, nil); err != nil {
		return err
	}

	if *optHelp {
		set.PrintUsage(stdout)
		return nil
	}

	files := set.Args()
	if len(files) == 0 {
		fmt.Fprintf(stdout, "Usage: %s <file.c> ... <file.c>\n", prog)
		fmt.Fprintln(stdout, "Convert C sources files to 7bit ASCII")
		return nil
	}

	cfg, err := config.Load(*optConfig, ".")
	if err != nil {
		return err
	}
	logger, err := logutil.New(stderr, cfg.Log.Level, *optDebug)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("loaded configuration", "path", cfg.Path)
	}

	opts := sevenbit.Options{
		Format:       sevenbit.DefaultFormat,
		BackupSuffix: cfg.SevenBit.BackupSuffix,
		TempSuffix:   cfg.SevenBit.TempSuffix,
		Logger:       logger,
	}

	for _, name := range files {
		if paths.IsGenerated(name, opts.BackupSuffix, opts.TempSuffix) {
			logger.Warn("skipping file left by a previous run", "file", name)
			continue
		}
		translated, err := sevenbit.ConvertFile(name, opts)
		if err != nil {
			return err
		}
		if translated {
			fmt.Fprintf(stdout, "File %s translated\n", name)
		}
	}

	return nil
}
