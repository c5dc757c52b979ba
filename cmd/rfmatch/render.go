package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rfmatch/render"
)

// errOut 未指定输出文件
var errOut = errors.New("render: --out is required")

func (a *app) renderCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "绘制圆图，按扩展名输出 png、svg 或 html",
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
			names := make([]string, len(cas.Elements))
			for i, e := range cas.Elements {
				names[i] = fmt.Sprintf("%d %s", i, e.Type())
			}
			title := filepath.Base(args[0])
			charts := &render.Charts{Title: title, Traces: traces, Names: names}

			if addr != "" {
				zap.L().Info("serving", zap.String("addr", addr))
				return http.ListenAndServe(addr, http.HandlerFunc(charts.Handler))
			}

			out := a.cfg.Out
			switch strings.ToLower(filepath.Ext(out)) {
			case "":
				return errOut
			case ".html", ".htm":
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := charts.Render(f); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			}
			opts := render.Options{Title: title, Names: names}
			p, err := render.Plot(traces, opts)
			if err != nil {
				return err
			}
			return render.Save(p, out, opts)
		},
	}
	cmd.Flags().StringVar(&addr, "serve", "", "以 HTTP 发布图表页面，如 :8080")
	return cmd
}
