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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-scout/internal/config"
	"github.com/sirseerhq/sirseer-scout/internal/console"
	"github.com/sirseerhq/sirseer-scout/internal/github"
	"github.com/sirseerhq/sirseer-scout/internal/metadata"
	"github.com/sirseerhq/sirseer-scout/internal/report"
	"github.com/sirseerhq/sirseer-scout/pkg/version"
)

// fetchOptions carries the fetch command's flag values.
type fetchOptions struct {
	token      string
	outputDir  string
	configPath string
	quiet      bool
	noColor    bool
}

// fetchCmd represents the fetch command
func newFetchCommand() *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:   "fetch <account>",
		Short: "Fetch all public repositories of a GitHub user account",
		Long: `Fetch every public repository owned by a GitHub user account and write
CSV, JSON, HTML, and plain-text reports named {handle}_repos.{ext}.

The account may be given as a bare handle, an @-prefixed handle, or a
full profile URL:
  sirseer-scout fetch octocat
  sirseer-scout fetch @octocat
  sirseer-scout fetch https://github.com/octocat

Organization accounts are rejected; this tool reports on user accounts
only.

A token raises the API rate limit but is not required:
  - Use --token flag to provide a token directly
  - Or set GITHUB_TOKEN environment variable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args[0], opts)
		},
	}

	// Define flags
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for the report files (default \".\")")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a config file")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Suppress progress output, keep warnings")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored console output")

	return cmd
}

// runFetch executes the fetch command: validate the account, enumerate
// its public repositories page by page, enrich each with topic tags, and
// render the reports.
func runFetch(ctx context.Context, accountArg string, opts fetchOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		cfg.Defaults.OutputDir = opts.outputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	reporter := console.New(console.Options{Quiet: opts.quiet, NoColor: opts.noColor})

	handle, err := github.NormalizeHandle(accountArg)
	if err != nil {
		return err
	}
	reporter.Infof("Detected account handle: %s", handle)

	tracker := metadata.New()
	client := github.NewRESTClient(github.ClientOptions{
		Endpoint:    cfg.GitHub.APIEndpoint,
		Token:       resolveToken(opts.token, cfg),
		PageSize:    cfg.Defaults.PageSize,
		PageDelay:   cfg.Defaults.PageDelay(),
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay(),
		Timeout:     cfg.Retry.Timeout(),
		Reporter:    reporter,
		Recorder:    tracker,
	})

	if _, err := client.Account(ctx, handle); err != nil {
		return err
	}
	reporter.Successf("Account %q validated. Fetching repositories...", handle)

	if err := os.MkdirAll(cfg.Defaults.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textLog, err := report.NewTextLogFile(filepath.Join(cfg.Defaults.OutputDir, report.Filename(handle, "txt")))
	if err != nil {
		return err
	}
	defer textLog.Close()

	// Each listing page is enriched as soon as it arrives, so the text
	// report grows while enumeration is still in flight.
	var summaries []github.Summary
	repos, err := client.Repositories(ctx, handle, func(page int, batch []github.Repository) {
		enriched := make([]github.Summary, 0, len(batch))
		for _, repo := range batch {
			tags := client.Topics(ctx, repo.Owner.Login, repo.Name)
			enriched = append(enriched, github.NewSummary(repo, tags))
		}
		if err := textLog.AppendPage(page, enriched); err != nil {
			reporter.Warnf("Text report: %v", err)
		}
		summaries = append(summaries, enriched...)
	})
	if err != nil {
		return err
	}
	reporter.Infof("Total public repositories found: %d", len(repos))

	rep := &report.Report{
		Handle:       handle,
		Generated:    time.Now(),
		Repositories: summaries,
	}
	for _, r := range []report.Renderer{report.CSVRenderer{}, report.JSONRenderer{}, report.HTMLRenderer{}} {
		path, err := report.WriteFile(cfg.Defaults.OutputDir, rep, r)
		if err != nil {
			return err
		}
		reporter.Successf("Saved %s report to %s", strings.ToUpper(r.Extension()), path)
	}

	stats := tracker.Generate(version.Version, handle, time.Now())
	reporter.Blank()
	reporter.Successf("All files saved successfully.")
	reporter.Infof("Run summary: %d repositories across %d pages, %d API calls, %d degraded topic fetches, %s elapsed",
		stats.Repositories, stats.Pages, stats.APICalls, stats.TopicFailures, stats.Duration)

	return nil
}

// resolveToken returns the token from the flag or the configured token
// environment variable. An empty result means unauthenticated access.
func resolveToken(flagToken string, cfg *config.Config) string {
	if flagToken != "" {
		return flagToken
	}
	return cfg.Token()
}
