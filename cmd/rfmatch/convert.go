package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rfmatch/maths"
	"rfmatch/matching"
)

func (a *app) convertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert RS XS RL XL",
		Short: "转换源与负载的阻抗表示",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := floats(args)
			if err != nil {
				return err
			}
			if from == "" {
				from = string(a.cfg.Imp)
			}
			src, load, err := matching.ChangeImpedance(
				maths.Port{Re: vals[0], Im: vals[1]},
				maths.Port{Re: vals[2], Im: vals[3]},
				maths.Representation(from), maths.Representation(to),
				a.cfg.Z0, a.cfg.Freq, a.cfg.FreqUnit, a.cfg.CapUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.9g %.9g %.9g %.9g\n", src.Re, src.Im, load.Re, load.Im)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "输入表示，缺省取 --imp")
	cmd.Flags().StringVar(&to, "to", string(maths.ZRI), "输出表示")
	return cmd
}
