// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/degree"
	"github.com/katalvlaran/epinet/neighborhood"
	"github.com/katalvlaran/epinet/netstats"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <contacts.csv>",
		Short: "Print edge/node counts, density and largest-component fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			s, err := netstats.Summarize(g)
			if err != nil {
				return err
			}

			return a.emit(s, s.Write)
		},
	}
}

func newHeterogeneityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "heterogeneity <contacts.csv>",
		Short: "Print E(k), E(k^2), kappa and kappa/E(k)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			m, err := degree.Heterogeneity(g)
			if err != nil {
				return err
			}

			return a.emit(m.Map(), func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %g\n%s %g\n%s %g\n%s %g\n",
					degree.KeyMeanDegree, m.MeanDegree,
					degree.KeySecondMoment, m.SecondMoment,
					degree.KeyKappa, m.Kappa,
					degree.KeyKappaRatio, m.KappaRatio)
				return err
			})
		},
	}
}

type histogram struct {
	Values []int `yaml:"values"`
	Counts []int `yaml:"counts"`
}

type selection struct {
	Vertices []int64 `yaml:"vertices"`
}

// newDegreesCmd selects vertices by degree. Without selection flags it
// prints the degree distribution.
func newDegreesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "degrees <contacts.csv>",
		Short: "Degree distribution and degree-based vertex selection",
		Args:  cobra.ExactArgs(1),
	}
	fs := cmd.Flags()
	fs.Int("k", 0, "list vertices with exactly this degree")
	fs.Int("kmin", 0, "lower bound of a degree range")
	fs.Int("kmax", 0, "upper bound of a degree range")
	fs.Int("approx", 0, "pick one vertex of this degree, or the nearest lower degree present")
	fs.Int64("seed", 0, "random seed for --approx")
	cmd.MarkFlagsMutuallyExclusive("k", "kmin")
	cmd.MarkFlagsMutuallyExclusive("k", "approx")
	cmd.MarkFlagsMutuallyExclusive("kmin", "approx")
	cmd.MarkFlagsRequiredTogether("kmin", "kmax")
	mustBind(a.v, keyDegreeSeed, fs.Lookup("seed"))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := a.loadGraph(args[0])
		if err != nil {
			return err
		}
		fs := cmd.Flags()

		var ids []int64
		switch {
		case fs.Changed("approx"):
			k, _ := fs.GetInt("approx")
			id, err := degree.Approximate(g, k, degreeOptions(a.v)...)
			if err != nil {
				return err
			}
			ids = []int64{id}
		case fs.Changed("k"):
			k, _ := fs.GetInt("k")
			if ids, err = degree.Exact(g, k); err != nil {
				return err
			}
		case fs.Changed("kmin"):
			kmin, _ := fs.GetInt("kmin")
			kmax, _ := fs.GetInt("kmax")
			if ids, err = degree.InRange(g, kmin, kmax); err != nil {
				return err
			}
		default:
			values, counts, err := degree.Distribution(g)
			if err != nil {
				return err
			}
			h := histogram{Values: values, Counts: counts}
			return a.emit(h, func(w io.Writer) error {
				for i := range values {
					if _, err := fmt.Fprintf(w, "%d %d\n", values[i], counts[i]); err != nil {
						return err
					}
				}
				return nil
			})
		}

		a.log.Debug("degree selection", "matches", len(ids))
		return a.emit(selection{Vertices: ids}, func(w io.Writer) error {
			for _, id := range ids {
				if _, err := fmt.Fprintln(w, id); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return cmd
}

type edgeOut struct {
	A      int64   `yaml:"a"`
	B      int64   `yaml:"b"`
	Weight float64 `yaml:"weight"`
}

type subgraphOut struct {
	Root     int64     `yaml:"root"`
	Radius   int       `yaml:"radius"`
	Vertices []int64   `yaml:"vertices"`
	Edges    []edgeOut `yaml:"edges"`
}

func newNeighborhoodCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighborhood <contacts.csv>",
		Short: "Print the subgraph within --radius hops of --root",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().Int64("root", 0, "root vertex ID")
	cmd.Flags().Int("radius", neighborhood.DefaultRadius, "hop limit")
	_ = cmd.MarkFlagRequired("root")
	mustBind(a.v, keyRadius, cmd.Flags().Lookup("radius"))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		g, err := a.loadGraph(args[0])
		if err != nil {
			return err
		}
		root, _ := cmd.Flags().GetInt64("root")
		radius := a.v.GetInt(keyRadius)

		sub, err := neighborhood.ExtractContext(cmd.Context(), g, root, radius)
		if err != nil {
			return err
		}

		res := subgraphOut{Root: root, Radius: radius, Vertices: sub.Vertices()}
		for _, e := range sub.Edges() {
			res.Edges = append(res.Edges, edgeOut{A: e.From, B: e.To, Weight: e.Weight})
		}

		return a.emit(res, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "vertices %v\n", res.Vertices); err != nil {
				return err
			}
			for _, e := range res.Edges {
				if _, err := fmt.Fprintf(w, "%d %d %g\n", e.A, e.B, e.Weight); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return cmd
}
