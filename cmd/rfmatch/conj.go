package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rfmatch/conjugate"
)

func (a *app) conjCmd() *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "conj S11A S11B S12A S12B S21A S21B S22A S22B",
		Short: "双端口同时共轭匹配",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := floats(args)
			if err != nil {
				return err
			}
			s, err := conjugate.ParseSParams([8]float64(vals), form)
			if err != nil {
				return err
			}
			res := conjugate.Match(s, conjugate.Options{
				Z0:       a.cfg.Z0,
				Freq:     a.cfg.Freq,
				FreqUnit: a.cfg.FreqUnit,
				CUnit:    a.cfg.CapUnit,
				Verbose:  a.cfg.Verbose,
			})
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "k=%.6g B1=%.6g B2=%.6g MAG=%.6g dB stable=%t\n", res.K, res.B1, res.B2, res.MAG, res.Stable())
			for _, p := range []struct {
				name string
				port conjugate.Port
			}{{"src", res.Src}, {"load", res.Load}} {
				fmt.Fprintf(w, "%s gamma=%.6g z=%.6g r=%.6g %s c=%.6g %s\n",
					p.name, p.port.Gamma, p.port.Z, p.port.R, p.port.ResUnit, p.port.C, p.port.CapUnit)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&form, "form", "ri", "S 参数格式 ri|ma|db")
	return cmd
}
