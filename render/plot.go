package render

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"rfmatch/element"
)

// ErrFormat 输出格式无法识别
var ErrFormat = errors.New("render: unsupported output format")

// Options 绘图选项
type Options struct {
	Title string
	Names []string  // 轨迹名称，缺省为序号
	Size  vg.Length // 图像边长，缺省 12cm
}

func (o Options) size() vg.Length {
	if o.Size <= 0 {
		return 12 * vg.Centimeter
	}
	return o.Size
}

// Plot 绘制圆图网格与级联轨迹
func Plot(traces []element.ArcTrace, o Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Min, p.X.Max = -1.05, 1.05
	p.Y.Min, p.Y.Max = -1.05, 1.05
	p.HideAxes()

	grey := color.Gray{Y: 200}
	for _, c := range Grid() {
		line, err := plotter.NewLine(xys(c))
		if err != nil {
			return nil, fmt.Errorf("网格 %s: %w", c.Name, err)
		}
		line.Color = grey
		line.Width = vg.Points(0.5)
		p.Add(line)
	}
	for i, c := range Traces(traces, o.Names) {
		if len(c.X) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys(c))
		if err != nil {
			return nil, fmt.Errorf("轨迹 %s: %w", c.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.Name, line)
	}
	return p, nil
}

func xys(c Curve) plotter.XYs {
	pts := make(plotter.XYs, len(c.X))
	for i := range c.X {
		pts[i].X, pts[i].Y = c.X[i], c.Y[i]
	}
	return pts
}

// Save 按扩展名保存为 PNG 或 SVG
func Save(p *plot.Plot, path string, o Options) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg":
		return p.Save(o.size(), o.size(), path)
	}
	return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}
