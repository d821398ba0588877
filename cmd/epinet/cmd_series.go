// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/epinet/series"
	"github.com/katalvlaran/epinet/stats"
	"github.com/katalvlaran/epinet/tabular"
)

func newCICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci <samples.csv>",
		Short: "Mean and Student-t confidence interval of every column",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().Float64("confidence", stats.DefaultConfidence, "confidence level in (0,1)")
	mustBind(a.v, keyCIConfidence, cmd.Flags().Lookup("confidence"))

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		opts, err := readerOptions(a.v)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		x, err := tabular.ReadMatrix(f, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		ivs, err := stats.MeanCIColumns(x, a.v.GetFloat64(keyCIConfidence))
		if err != nil {
			return err
		}

		return a.emit(ivs, func(w io.Writer) error {
			for j, iv := range ivs {
				if _, err := fmt.Fprintf(w, "column %d: mean %.4f [%.4f, %.4f]\n",
					j, iv.Mean, iv.Lower, iv.Upper); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return cmd
}

type interpolationOut struct {
	Grid   []float64   `yaml:"grid"`
	Values [][]float64 `yaml:"values"`
}

func newInterpolateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interpolate <series.csv>...",
		Short: "Align (t,f) series onto the grid of the earliest-ending one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := readerOptions(a.v)
			if err != nil {
				return err
			}
			times := make([][]float64, len(args))
			values := make([][]float64, len(args))
			for i, path := range args {
				if times[i], values[i], err = readSeriesFile(path, opts); err != nil {
					return err
				}
			}

			grid, m, err := series.Interpolate(times, values)
			if err != nil {
				return err
			}
			res := interpolationOut{Grid: grid, Values: make([][]float64, len(args))}
			for i := range args {
				res.Values[i] = mat.Row(nil, i, m)
			}

			return a.emit(res, func(w io.Writer) error {
				var sb strings.Builder
				for j, t := range grid {
					sb.Reset()
					fmt.Fprintf(&sb, "%g", t)
					for i := range res.Values {
						fmt.Fprintf(&sb, " %g", res.Values[i][j])
					}
					sb.WriteByte('\n')
					if _, err := io.WriteString(w, sb.String()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func readSeriesFile(path string, opts []tabular.Option) ([]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	ts, ys, err := tabular.ReadSeries(f, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return ts, ys, nil
}
