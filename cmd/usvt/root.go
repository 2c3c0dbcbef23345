// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/katalvlaran/graphon/internal/ioformat"
	"github.com/katalvlaran/graphon/usvt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// stdinPath selects standard input (and, for --output, standard output).
const stdinPath = "-"

// Execute runs the CLI with args and returns the process exit code.
func Execute(version string, args []string) int {
	logger := log.New()
	logger.SetOutput(os.Stderr)

	cmd := newRootCommand(version, logger)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("usvt failed")
		return 1
	}

	return 0
}

func newRootCommand(version string, logger *log.Logger) *cobra.Command {
	var (
		flags      = defaultConfig()
		configPath string
		verbose    bool
	)
	rootCmd := &cobra.Command{
		Use:           "usvt [input-file]",
		Short:         "Estimate a graphon from adjacency observations with singular value thresholding.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			cfg, err := resolveConfig(cmd.Flags(), &flags, configPath)
			if err != nil {
				return err
			}
			input := stdinPath
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, logger, cfg, input)
		},
	}
	rootCmd.Flags().Float64Var(flags.Eta, "eta", usvt.DefaultEta, "threshold slack, strictly between 0 and 1")
	rootCmd.Flags().StringVarP(&flags.Decomposer, "decomposer", "d", flags.Decomposer, "SVD backend: gonum or jacobi")
	rootCmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "output format: json or yaml")
	rootCmd.Flags().StringVarP(&flags.InputFormat, "input-format", "i", flags.InputFormat, "input format: yaml, json or edges")
	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output file (default stdout)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

func run(cmd *cobra.Command, logger *log.Logger, cfg Config, input string) (err error) {
	dec, err := cfg.decomposer()
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if input != stdinPath {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	logger.Debugf("Reading %s observations from %s", cfg.InputFormat, input)
	in, err := ioformat.ReadObservations(r, cfg.InputFormat)
	if err != nil {
		return err
	}
	logger.WithField("observations", len(in.Adjacencies)).Debug("observations loaded")

	res, err := usvt.EstimateCollection(in.Adjacencies,
		usvt.WithEta(*cfg.Eta),
		usvt.WithDecomposer(dec),
		usvt.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" && cfg.Output != stdinPath {
		var f *os.File
		if f, err = os.Create(cfg.Output); err != nil {
			return err
		}
		defer closeInto(f, &err)
		w = f
	}

	return ioformat.WriteRecord(w, ioformat.NewRecord(res, in.Vertices), cfg.Format, isTerminal(w))
}

// closeInto closes c and stores its error in *errp unless *errp already holds one.
func closeInto(c io.Closer, errp *error) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = cerr
	}
}
