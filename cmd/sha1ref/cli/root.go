// Package cli implements the sha1ref command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/codahale/sha1ref/internal/logging"
	"github.com/spf13/cobra"
)

// ErrUsage marks command-line usage failures.
var ErrUsage = errors.New("usage error")

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}

type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// New returns the root command.
func New() *cobra.Command {
	ro := &rootOptions{logger: logging.Discard()}

	cmd := &cobra.Command{
		Use:           "sha1ref",
		Short:         "Compute SHA-1 message digests (FIPS PUB 180-1).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(ro.logLevel)
			if err != nil {
				return fmt.Errorf("%w: %w", err, ErrUsage)
			}
			format, err := logging.ParseFormat(ro.logFormat)
			if err != nil {
				return fmt.Errorf("%w: %w", err, ErrUsage)
			}
			ro.logger = logging.New(cmd.ErrOrStderr(), level, format)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "log format (text, json)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", err, ErrUsage)
	})

	cmd.AddCommand(newSumCommand(ro))
	cmd.AddCommand(newSelftestCommand(ro))
	return cmd
}
