package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rfmatch/matching"
	"rfmatch/render"
)

// floats 解析位置参数
func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("参数 %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match RS XS RL XL",
		Short: "计算全部匹配网络",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := floats(args)
			if err != nil {
				return err
			}
			res, err := matching.Networks(matching.NetworkRequest{
				Rs: vals[0], Xs: vals[1], Rl: vals[2], Xl: vals[3],
				Imp:      a.cfg.Imp,
				QNet:     a.cfg.QNet,
				Q:        a.cfg.Q,
				Z0:       a.cfg.Z0,
				Freq:     a.cfg.Freq,
				FreqUnit: a.cfg.FreqUnit,
				CUnit:    a.cfg.CapUnit,
				LUnit:    a.cfg.IndUnit,
				ZScale:   a.cfg.ZScale,
				Verbose:  a.cfg.Verbose,
			})
			if err != nil {
				return err
			}
			return printNetworks(cmd.OutOrStdout(), res)
		},
	}
}

// printNetworks 每行一个元件，无解的网络显示 NaN
func printNetworks(w io.Writer, res matching.NetworkResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "zs\t%v\n", res.ZS)
	fmt.Fprintf(tw, "zl\t%v\n", res.ZL)
	fmt.Fprintln(tw, "NETWORK\tELEMENT\tVALUE\tUNIT")
	caps, inds := render.Components(res)
	for _, c := range append(caps, inds...) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Network, c.Name, formatValue(c.Value), c.Unit)
	}
	fmt.Fprintf(tw, "pi\tQ\t%s\t\n", formatValue(res.Pi.Q))
	fmt.Fprintf(tw, "tee\tQ\t%s\t\n", formatValue(res.Tee.Q))
	for _, q := range []struct {
		name string
		n    matching.CLQ
	}{
		{"hp_ell_cl_w_q", res.HPEllCLWithQ},
		{"hp_ell_lc_w_q", res.HPEllLCWithQ},
		{"lp_ell_cl_w_q", res.LPEllCLWithQ},
		{"lp_ell_lc_w_q", res.LPEllLCWithQ},
	} {
		fmt.Fprintf(tw, "%s\tQNet\t%s\t#%d\n", q.name, formatValue(q.n.QNet), q.n.SolutionIndex)
	}
	return tw.Flush()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
