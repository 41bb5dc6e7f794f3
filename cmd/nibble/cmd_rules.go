package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dhamidi/nibble/buffer"
	"github.com/dhamidi/nibble/config"
	"github.com/dhamidi/nibble/format"
	"github.com/dhamidi/nibble/rules"
)

func newRulesCmd() *cobra.Command {
	var configPath string
	var outputFormat string
	var chunkSize int
	var maxBuffer int
	var showMetrics bool
	var from string
	var facts []string

	cmd := &cobra.Command{
		Use:   "rules <file|->",
		Short: "Parse a rules file and print the rules",
		Long: `Parse a rules file and print the rules.

The input is read incrementally. With --from, only the rules leaving that
source whose constraints hold for the given --fact names are printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				if !cmd.Flags().Changed("verbose") && !cmd.Flags().Changed("log-file") {
					configureLogging(cfg.Log.Verbosity, cfg.Log.File)
				}
			}
			if cmd.Flags().Changed("chunk-size") {
				cfg.Buffer.ChunkSize = chunkSize
			}
			if cmd.Flags().Changed("max-buffer") {
				cfg.Buffer.MaxSize = maxBuffer
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics = showMetrics
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			in, name, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := append(cfg.BufferOptions(), buffer.WithName(name))
			registry := prometheus.NewRegistry()
			if cfg.Metrics {
				opts = append(opts, buffer.WithMetrics(buffer.NewMetrics(registry)))
			}

			if from != "" {
				err = matchRules(in, opts, from, facts, enc)
			} else {
				err = printRules(in, opts, enc)
			}

			if cfg.Metrics {
				if merr := printMetrics(cmd.ErrOrStderr(), registry); merr != nil && err == nil {
					err = merr
				}
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, line, json)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", config.DefaultChunkSize, "minimum bytes per read")
	cmd.Flags().IntVar(&maxBuffer, "max-buffer", 0, "maximum buffered bytes per rule (0 for no limit)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print buffer metrics to stderr when done")
	cmd.Flags().StringVar(&from, "from", "", "only print rules leaving this source")
	cmd.Flags().StringSliceVar(&facts, "fact", nil, "facts that hold, for use with --from")

	return cmd
}

func openInput(arg string) (io.ReadCloser, string, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, "", fmt.Errorf("open file: %w", err)
	}
	return f, arg, nil
}

func printRules(r io.Reader, opts []buffer.Option, enc format.Encoder) error {
	for rule, err := range rules.Decode(r, opts...) {
		if err != nil {
			return err
		}
		if err := enc.Encode(rule); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}

func matchRules(r io.Reader, opts []buffer.Option, from string, facts []string, enc format.Encoder) error {
	all, err := rules.ReadAll(r, opts...)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(facts))
	for _, f := range facts {
		present[f] = true
	}

	for _, rule := range rules.Match(all, from, present) {
		if err := enc.Encode(rule); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}

func printMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			value := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				value = g.GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}

	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
