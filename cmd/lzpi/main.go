// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

// Command lzpi compresses or decompresses a stream using the lzpi codec.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/kkoopa/lzpi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// newRootCommand builds the lzpi root command: reads stdin, writes stdout,
// compressing by default or decompressing when -d is given.
func newRootCommand() *cobra.Command {
	var decompress bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lzpi",
		Short: "Compress or decompress a stream using the lzpi codec",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			if decompress {
				return lzpi.Decompress(in, out, &lzpi.DecompressOptions{Logger: log})
			}
			return lzpi.Compress(in, out, &lzpi.CompressOptions{Logger: log})
		},
	}

	cmd.Flags().BoolVarP(&decompress, "decompress", "d", false, "decompress stdin instead of compressing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log stream lifecycle events to stderr")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return err
	})

	return cmd
}

// newLogger builds the logrus logger used for the run. Verbose, -v, or the
// LZPI_LOG_LEVEL environment variable can raise the level above Warn.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	if lvl, err := logrus.ParseLevel(os.Getenv("LZPI_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// exitCode maps an error from Execute to a process exit status: the
// underlying errno when the failure is a syscall-level I/O error, 1
// otherwise (usage errors, truncated streams, oversized input).
func exitCode(err error) int {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName(), err)

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}

func progName() string {
	if len(os.Args) == 0 {
		return "lzpi"
	}
	return filepath.Base(os.Args[0])
}
