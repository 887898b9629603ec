//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.bug.st/sampledata"
	"go.bug.st/sampledata/internal/config"
)

var (
	errUnknownSample = errors.New("unknown sample")
	errLoadFailed    = errors.New("some files could not be loaded")
	errInvalidArgs   = errors.New("invalid arguments")
)

type globalFlags struct {
	configFile string
	cacheDir   string
	catalog    string
	verbose    bool
}

// app is what every subcommand works on, built in PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	logic  *sampledata.Logic
}

func newRootCommand() *cobra.Command {
	var flags globalFlags
	a := &app{}

	cmd := &cobra.Command{
		Use:   "sampledata",
		Short: "Download sample datasets",
		Long:  "List, download and cache sample datasets grouped by category.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.setup(cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.cacheDir, "cache-dir", "", "Directory where downloaded files are kept")
	cmd.PersistentFlags().StringVar(&flags.catalog, "catalog", "", "YAML catalog of additional sources")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(listCmd(a))
	cmd.AddCommand(fetchCmd(a))
	cmd.AddCommand(cacheCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, flags globalFlags) error {
	cfg := config.Default()
	if flags.configFile != "" {
		var err error
		if cfg, err = config.LoadFromFile(flags.configFile); err != nil {
			return fmt.Errorf("%w: %w", errInvalidArgs, err)
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidArgs, err)
	}
	cfg = cfg.Merge(config.Config{CacheDir: flags.cacheDir, Catalog: flags.catalog, Verbose: flags.verbose})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidArgs, err)
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	registry := sampledata.NewRegistry()
	if err := sampledata.RegisterBuiltIns(registry); err != nil {
		return err
	}
	if cfg.Catalog != "" {
		if err := sampledata.LoadCatalogFile(registry, cfg.Catalog); err != nil {
			return err
		}
		a.logger.Debug("catalog loaded", "path", cfg.Catalog)
	}

	// The library expects the cache directory to exist already
	if err := os.MkdirAll(cfg.CacheDir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	a.logger.Debug("using cache", "dir", cfg.CacheDir, "inactivity_timeout", cfg.InactivityTimeout)

	notifier := statusNotifier(cmd.ErrOrStderr())
	cache := &sampledata.Cache{
		Dir: cfg.CacheDir,
		Fetcher: &sampledata.HTTPFetcher{Config: &sampledata.Config{
			ExtraHeaders:      cfg.Headers,
			InactivityTimeout: cfg.InactivityTimeout,
		}},
		Notifier: notifier,
	}
	a.logic = sampledata.NewLogic(registry, cache, sampledata.FileLoader{}, sampledata.WithNotifier(notifier))
	return nil
}

func statusNotifier(w io.Writer) sampledata.Notifier {
	return sampledata.NotifierFunc(func(msg string) {
		fmt.Fprintln(w, msg)
	})
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSAMPLE\tFILES\tCACHED")
			for _, category := range a.logic.Registry.Categories() {
				for _, src := range a.logic.Registry.Sources(category) {
					files, cached := "-", "-"
					if std, ok := src.(*sampledata.StandardSource); ok {
						n := 0
						for _, name := range std.FileNames {
							if a.logic.Cache.Has(name) {
								n++
							}
						}
						files = fmt.Sprint(len(std.FileNames))
						cached = fmt.Sprint(n)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", category, src.Label(), files, cached)
				}
			}
			return w.Flush()
		},
	}
}

func lookup(a *app, name string) (sampledata.Source, error) {
	src, ok := a.logic.Registry.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownSample, name)
	}
	return src, nil
}

func fetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <sample>...",
		Short: "Download samples and load them",
		Long:  "Download the files of each sample into the cache, if needed, and check that every file with a node name can be loaded.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, name := range args {
				src, err := lookup(a, name)
				if err != nil {
					return err
				}
				expected := -1
				if std, ok := src.(*sampledata.StandardSource); ok {
					expected = 0
					for _, node := range std.NodeNames {
						if node != "" {
							expected++
						}
					}
				}
				results := a.logic.DownloadAndLoad(cmd.Context(), src)
				for _, res := range results {
					if info, ok := res.Handle.(os.FileInfo); ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Name, sampledata.FormatSize(float64(info.Size())))
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\n", res.Name)
					}
				}
				if expected >= 0 && len(results) < expected {
					a.logger.Warn("sample partially loaded", "sample", name, "loaded", len(results), "expected", expected)
					failed = true
				}
			}
			if failed {
				return errLoadFailed
			}
			return nil
		},
	}
}

func cacheCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cache <sample>...",
		Short: "Download samples into the cache without loading them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				src, err := lookup(a, name)
				if err != nil {
					return err
				}
				for _, path := range a.logic.DownloadSourceIntoCache(cmd.Context(), src) {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			}
			return nil
		},
	}
}
