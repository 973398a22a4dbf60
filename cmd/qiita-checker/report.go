// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sotoiwa/qiita-checker/internal/config"
	qerrors "github.com/sotoiwa/qiita-checker/internal/errors"
	"github.com/sotoiwa/qiita-checker/internal/output"
	"github.com/sotoiwa/qiita-checker/internal/qiita"
)

// reportOptions holds the flag values for one run.
type reportOptions struct {
	format     string
	filename   string
	sortBy     string
	reverse    bool
	itemID     string
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "qiita-checker",
		Short: "Report view, like and stock counts for your Qiita articles",
		Long: `qiita-checker fetches the authenticated user's articles from the Qiita
API, enriches each with its view count and stockers, and renders the result
as an aligned text table, CSV, or JSON.

Authentication is required via access token:
  - Set the QIITA_TOKEN environment variable before running`,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "output", "o", "", "Output format: text, csv or json (default from config, text)")
	cmd.Flags().StringVarP(&opts.filename, "filename", "f", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "Sort results by: views, likes or stocks (default: API order)")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "Sort in descending order")
	cmd.Flags().StringVar(&opts.itemID, "item-id", "", "Report a single article with its stockers and likers")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each API request to stderr")

	return cmd
}

// runReport sequences one run: collect, sort, format.
func runReport(ctx context.Context, opts *reportOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.format == "" {
		opts.format = cfg.Defaults.OutputFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sortKey, err := qiita.ParseSortKey(opts.sortBy)
	if err != nil {
		return err
	}

	// Reject a bad format before any network traffic happens.
	switch opts.format {
	case output.FormatText, output.FormatCSV, output.FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, csv, json", opts.format)
	}

	token, err := cfg.Token()
	if err != nil {
		return err
	}

	logger := newLogger(opts.verbose)
	client := qiita.NewRESTClient(cfg.Qiita.APIEndpoint, token, logger)
	collector := qiita.NewCollector(client, qiita.FetchOptions{PageSize: cfg.Defaults.PageSize}, logger)

	var articles []qiita.Article
	if opts.itemID != "" {
		article, err := collector.CollectOne(ctx, opts.itemID)
		if err != nil {
			return err
		}
		articles = []qiita.Article{*article}
	} else {
		articles, err = collector.CollectAll(ctx)
		if err != nil {
			return err
		}
	}

	qiita.SortArticles(articles, sortKey, opts.reverse)

	w, closeFn, err := openDestination(cfg, opts.filename)
	if err != nil {
		return err
	}
	defer closeFn()

	formatter, err := output.New(opts.format, w)
	if err != nil {
		return err
	}
	if err := formatter.Format(output.FromArticles(articles)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// newLogger builds the process logger. Requests are logged at Info level,
// which stays quiet unless --verbose raises the handler level.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openDestination resolves the output path and opens the destination.
// An empty filename means stdout; otherwise the file is created or
// truncated. The returned close function is a no-op for stdout.
func openDestination(cfg *config.Config, filename string) (io.Writer, func() error, error) {
	path := cfg.ResolveOutputPath(filename)
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, file.Close, nil
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, qerrors.ErrMissingToken) ||
		errors.Is(err, qerrors.ErrInvalidToken) ||
		errors.Is(err, qerrors.ErrNotFound) ||
		errors.Is(err, qerrors.ErrRateLimited) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, qerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
