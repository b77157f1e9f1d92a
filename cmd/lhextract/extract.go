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
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sirseerhq/lh-extract/internal/collector"
	"github.com/sirseerhq/lh-extract/internal/config"
	lherrors "github.com/sirseerhq/lh-extract/internal/errors"
	"github.com/sirseerhq/lh-extract/internal/lighthouse"
	"github.com/sirseerhq/lh-extract/internal/logger"
	"github.com/sirseerhq/lh-extract/internal/output"
	"github.com/spf13/cobra"
)

// Usage failures, printed verbatim on stdout.
const (
	failAccount   = "FAIL: Need an account"
	failToken     = "FAIL: Need a token"
	failProject   = "FAIL: Need a project ID"
	failMilestone = "FAIL: Need a milestone name (in quotes: 'Iteration 7')"
	failNumeric   = "FAIL: Project ID must be numeric"
)

// Options are the validated command-line arguments of one run.
type Options struct {
	Account   string
	Token     string
	ProjectID int
	Milestone string
}

// flagValues holds raw flag input before validation.
type flagValues struct {
	account    string
	token      string
	project    string
	milestone  string
	configPath string
	logLevel   string
}

// options checks the required flags in a fixed order and stops at the
// first one missing.
func (f *flagValues) options() (Options, error) {
	if f.account == "" {
		return Options{}, lherrors.NewUsageError(failAccount)
	}
	if f.token == "" {
		return Options{}, lherrors.NewUsageError(failToken)
	}
	if f.project == "" {
		return Options{}, lherrors.NewUsageError(failProject)
	}
	if f.milestone == "" {
		return Options{}, lherrors.NewUsageError(failMilestone)
	}

	projectID, err := strconv.Atoi(strings.TrimSpace(f.project))
	if err != nil || projectID <= 0 {
		return Options{}, lherrors.NewUsageError(failNumeric)
	}

	return Options{
		Account:   f.account,
		Token:     f.token,
		ProjectID: projectID,
		Milestone: f.milestone,
	}, nil
}

func newRootCommand() *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:   "lh-extract",
		Short: "Export a Lighthouse milestone's tickets as CSV",
		Long: `lh-extract fetches every ticket in a Lighthouse milestone and writes
them to stdout as CSV, one row per ticket.

Each row carries the story title, labels, owner, state, description and
ticket URL, followed by one Note column per comment. The header is sized
to the ticket with the most comments; rows with fewer comments are
shorter.`,
		Example:       `  lh-extract -a acme -t 0123abcd -p 42 -m 'Iteration 7' > iteration7.csv`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if flags.logLevel != "" {
				cfg.Log.Level = flags.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level)

			client := lighthouse.NewRESTClient(lighthouse.Options{
				BaseURL:  cfg.BaseURL(opts.Account),
				Account:  opts.Account,
				Token:    opts.Token,
				Timeout:  cfg.Lighthouse.Timeout,
				PageSize: cfg.Lighthouse.PageSize,
			})
			defer client.Close()

			return runExtract(cmd.Context(), client, opts, cfg, log, cmd.OutOrStdout())
		},
	}

	cmd.SetFlagErrorFunc(flags.flagError)

	cmd.Flags().StringVarP(&flags.account, "account", "a", "", "Lighthouse account subdomain (the acme in acme.lighthouseapp.com)")
	cmd.Flags().StringVarP(&flags.token, "token", "t", "", "Lighthouse API token")
	cmd.Flags().StringVarP(&flags.project, "project", "p", "", "Numeric project ID")
	cmd.Flags().StringVarP(&flags.milestone, "milestone", "m", "", "Milestone name, quoted if it has spaces")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a YAML settings file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or disabled")

	return cmd
}

// runExtract collects the milestone and renders it to out. Nothing reaches
// out unless collection succeeded.
func runExtract(ctx context.Context, client lighthouse.Client, opts Options, cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	log.Info().
		Str("account", opts.Account).
		Int("project", opts.ProjectID).
		Str("milestone", opts.Milestone).
		Msg("extracting milestone")

	result, err := collector.New(client, log).Collect(ctx, opts.ProjectID, opts.Milestone)
	if err != nil {
		return err
	}

	writer := output.NewWriter(out, cfg.Output.DynamicNotes)
	if err := writeResult(writer, result, cfg.Output.IncludeHeader); err != nil {
		return err
	}

	log.Debug().Int("rows", writer.Count()).Msg("wrote csv")
	return nil
}

// writeResult streams the header and rows to writer and closes it.
func writeResult(writer output.OutputWriter, result *collector.Result, includeHeader bool) error {
	if includeHeader {
		if err := writer.WriteHeader(result.MaxComments); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	for _, row := range result.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// requiredFlags are the flags whose absence is a FAIL message.
var requiredFlags = map[string]bool{"account": true, "token": true, "project": true, "milestone": true}

// flagError turns a required flag given without a value into the same FAIL
// message an absent flag produces, following the fixed validation order.
func (f *flagValues) flagError(cmd *cobra.Command, err error) error {
	name, ok := missingValueFlag(cmd, err)
	if !ok || !requiredFlags[name] {
		return err
	}

	switch name {
	case "account":
		f.account = ""
	case "token":
		f.token = ""
	case "project":
		f.project = ""
	case "milestone":
		f.milestone = ""
	}
	if _, usageErr := f.options(); usageErr != nil {
		return usageErr
	}
	return err
}

// missingValueFlag reports the long name of the flag pflag rejected for
// lacking a value. pflag words these as "flag needs an argument: --token"
// or "flag needs an argument: 't' in -t".
func missingValueFlag(cmd *cobra.Command, err error) (string, bool) {
	const prefix = "flag needs an argument: "

	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(msg, prefix)

	if strings.HasPrefix(rest, "--") {
		return strings.TrimPrefix(rest, "--"), true
	}
	if len(rest) >= 3 && rest[0] == '\'' && rest[2] == '\'' {
		if flag := cmd.Flags().ShorthandLookup(rest[1:2]); flag != nil {
			return flag.Name, true
		}
	}
	return "", false
}
