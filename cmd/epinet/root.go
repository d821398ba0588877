// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/tabular"
)

// app carries the per-invocation state shared by all subcommands.
type app struct {
	v      *viper.Viper
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
	format string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: newViper(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "epinet",
		Short: "Contact-network statistics for epidemiological studies",
		Long: `epinet builds weighted contact networks from edge lists and reports
summary statistics, degree heterogeneity, degree-based node selection,
bounded neighborhoods, mean confidence intervals and aligned epidemic curves.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.init() },
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	pf.String("format", formatText, "output format: text or yaml")
	pf.String("delimiter", defaultDelimiter, `input field delimiter (one character, "tab" or "space")`)
	pf.Bool("header", false, "skip the first record of every input file")
	mustBind(a.v, keyConfig, pf.Lookup("config"))
	mustBind(a.v, keyLogLevel, pf.Lookup("log-level"))
	mustBind(a.v, keyOutputFormat, pf.Lookup("format"))
	mustBind(a.v, keyInputDelimiter, pf.Lookup("delimiter"))
	mustBind(a.v, keyInputHeader, pf.Lookup("header"))

	root.AddCommand(
		newSummaryCmd(a),
		newHeterogeneityCmd(a),
		newDegreesCmd(a),
		newNeighborhoodCmd(a),
		newCICmd(a),
		newInterpolateCmd(a),
	)

	return root
}

func (a *app) init() error {
	if err := load(a.v); err != nil {
		return err
	}
	logger, err := newLogger(a.v, a.errOut)
	if err != nil {
		return err
	}
	a.log = logger
	if a.format, err = outputFormat(a.v); err != nil {
		return err
	}
	a.log.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "format", a.format)

	return nil
}

// loadGraph reads a contact file and folds it into a graph.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	opts, err := readerOptions(a.v)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contacts, err := tabular.ReadContacts(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := builder.FromEdgeList(contacts)
	if err != nil {
		if builder.IsContactError(err) {
			a.log.Error("malformed contact", "file", path, "err", err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	st := g.Stats()
	a.log.Debug("graph loaded", "file", path, "contacts", len(contacts),
		"nodes", st.VertexCount, "edges", st.EdgeCount, "total_days", st.TotalWeight)

	return g, nil
}

// emit writes v as YAML, or calls text for the text format.
func (a *app) emit(v any, text func(w io.Writer) error) error {
	if a.format != formatYAML {
		return text(a.out)
	}
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// mustBind ties a config key to a flag. It only fails on a nil flag,
// which is a wiring bug.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}
