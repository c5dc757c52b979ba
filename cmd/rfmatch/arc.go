package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rfmatch"
	"rfmatch/element"
)

// cascade 加载设计文件，points 由参数、环境变量或配置文件给出时覆盖文件中的值
func (a *app) cascade(path string) (*rfmatch.Cascade, error) {
	cas, err := rfmatch.Load(path)
	if err != nil {
		return nil, err
	}
	if a.v.IsSet("points") {
		cas.Points = a.cfg.Points
	}
	return cas, nil
}

func (a *app) arcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arc FILE",
		Short: "计算级联元件的圆图轨迹",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cas, err := a.cascade(args[0])
			if err != nil {
				return err
			}
			traces, err := cas.Trace(a.cfg.Verbose)
			if err != nil {
				return err
			}
			printTraces(cmd.OutOrStdout(), cas, traces)
			return nil
		},
	}
}

func printTraces(w io.Writer, cas *rfmatch.Cascade, traces []element.ArcTrace) {
	fmt.Fprintf(w, "# z0=%g freq=%s source=%v\n", cas.Z0, cas.Freq, cas.Source)
	for i, trace := range traces {
		e := cas.Elements[i]
		fmt.Fprintf(w, "# %d %s %s start=%v end=%v\n", i, e.Type(), e.Orientation(), trace.Start, trace.End)
		for j := range trace.X {
			fmt.Fprintf(w, "%d\t%.9g\t%.9g\n", i, trace.X[j], trace.Y[j])
		}
	}
	fmt.Fprintf(w, "# zin=%v gamma=%v\n", cas.Impedance(), cas.Gamma())
}
