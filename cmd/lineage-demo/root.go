package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/lineage"
	"github.com/iw2rmb/lineage/internal/pipeline"
)

const defaultInput = `← Left  : A simple text editor.
→ Right : Shows modified text. Select text to view str reuse.
␛ Exit  : Press ` + "`Esc`" + ` to exit...

Indent: "    "
Modify: "abcdefghi"`

type options struct {
	input   string
	config  string
	logFile string
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "lineage-demo",
		Short:         "Interactive provenance viewer for text transformations",
		Version:       lineage.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.input, "input", "", "read the initial document from `file` (\"-\" for stdin)")
	flags.StringVar(&opts.config, "config", "", "load patterns and parts from a YAML `file`")
	flags.StringVar(&opts.logFile, "log", "", "write debug logs to `file`")

	root.AddCommand(newTUICmd(&opts), newDumpCmd(&opts))
	return root
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the input and inspect the output interactively (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, *opts)
		},
	}
}

// setup resolves the options shared by every subcommand.
func setup(cmd *cobra.Command, opts options) (string, *pipeline.Compiled, *zap.Logger, error) {
	text, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return "", nil, nil, err
	}

	cfg := pipeline.DefaultConfig()
	if opts.config != "" {
		if cfg, err = pipeline.LoadConfig(opts.config); err != nil {
			return "", nil, nil, err
		}
	}
	compiled, err := cfg.Compile()
	if err != nil {
		return "", nil, nil, err
	}

	log, err := newLogger(opts.logFile)
	if err != nil {
		return "", nil, nil, err
	}
	return text, compiled, log, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	switch path {
	case "":
		return defaultInput, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return log, nil
}
