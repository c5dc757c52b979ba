package render

import (
	"io"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"go.uber.org/zap"

	"rfmatch/element"
	"rfmatch/matching"
)

// Charts 网页图表：圆图轨迹与匹配网络元件值
type Charts struct {
	Title    string
	Traces   []element.ArcTrace
	Names    []string
	Networks *matching.NetworkResult
}

// Component 匹配网络中的单个元件值
type Component struct {
	Network string
	Name    string
	Value   float64
	Unit    string
}

// Components 展开全部拓扑的元件值，电容在前
func Components(res matching.NetworkResult) (caps, inds []Component) {
	add := func(list *[]Component, network, name string, v float64, u string) {
		*list = append(*list, Component{Network: network, Name: name, Value: v, Unit: u})
	}
	cl := func(network string, n matching.CL) {
		add(&caps, network, "C", n.C, n.CUnit)
		add(&inds, network, "L", n.L, n.LUnit)
	}
	clq := func(network string, n matching.CLQ) {
		add(&caps, network, "C", n.C, n.CUnit)
		add(&inds, network, "L", n.L, n.LUnit)
	}
	ccll := func(network string, n matching.CCLL) {
		add(&caps, network, "CS", n.CS, n.CUnit)
		add(&caps, network, "CL", n.CL, n.CUnit)
		add(&inds, network, "LS", n.LS, n.LUnit)
		add(&inds, network, "LL", n.LL, n.LUnit)
	}
	pt := func(network string, n matching.PiTee) {
		add(&caps, network, "C", n.C, n.CUnit)
		add(&caps, network, "CS", n.CS, n.CUnit)
		add(&caps, network, "CL", n.CL, n.CUnit)
		add(&inds, network, "L", n.L, n.LUnit)
		add(&inds, network, "LS", n.LS, n.LUnit)
		add(&inds, network, "LL", n.LL, n.LUnit)
	}
	cl("hp_ell_cl", res.HPEllCL)
	cl("hp_ell_lc", res.HPEllLC)
	cl("lp_ell_cl", res.LPEllCL)
	cl("lp_ell_lc", res.LPEllLC)
	clq("hp_ell_cl_w_q", res.HPEllCLWithQ)
	clq("hp_ell_lc_w_q", res.HPEllLCWithQ)
	clq("lp_ell_cl_w_q", res.LPEllCLWithQ)
	clq("lp_ell_lc_w_q", res.LPEllLCWithQ)
	pt("pi", res.Pi)
	pt("tee", res.Tee)
	ccll("lp1", res.LP1)
	ccll("lp2", res.LP2)
	ccll("hp1", res.HP1)
	ccll("hp2", res.HP2)
	ccll("bp1", res.BP1)
	ccll("bp2", res.BP2)
	ccll("bp3", res.BP3)
	ccll("bp4", res.BP4)
	return caps, inds
}

func legend() opts.Legend {
	return opts.Legend{
		Type:   "scroll",
		Orient: "vertical",
		Right:  "10",
		Top:    "20",
		Bottom: "20",
	}
}

// smithChart 圆图，网格与轨迹均为折线
func (c *Charts) smithChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "700px",
			Height: "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "圆图轨迹",
		}),
		charts.WithLegendOpts(legend()),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -1, Max: 1}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -1, Max: 1}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	for _, g := range Grid() {
		line.AddSeries(g.Name, lineData(g),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: "#cccccc", Width: 1}),
		)
	}
	for _, t := range Traces(c.Traces, c.Names) {
		line.AddSeries(t.Name, lineData(t),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
		)
	}
	return line
}

func lineData(c Curve) []opts.LineData {
	items := make([]opts.LineData, len(c.X))
	for i := range c.X {
		items[i] = opts.LineData{Value: []float64{c.X[i], c.Y[i]}}
	}
	return items
}

// barChart 各拓扑的元件值，NaN 留空
func barChart(title string, list []Component) *charts.Bar {
	bar := charts.NewBar()
	unitName := ""
	if len(list) > 0 {
		unitName = list[0].Unit
	}
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: unitName,
		}),
		charts.WithLegendOpts(legend()),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	var networks, names []string
	index := map[string]int{}
	seen := map[string]bool{}
	for _, comp := range list {
		if _, ok := index[comp.Network]; !ok {
			index[comp.Network] = len(networks)
			networks = append(networks, comp.Network)
		}
		if !seen[comp.Name] {
			seen[comp.Name] = true
			names = append(names, comp.Name)
		}
	}
	series := map[string][]opts.BarData{}
	for _, name := range names {
		series[name] = make([]opts.BarData, len(networks))
	}
	for _, comp := range list {
		if math.IsNaN(comp.Value) || math.IsInf(comp.Value, 0) {
			continue
		}
		series[comp.Name][index[comp.Network]] = opts.BarData{Value: comp.Value}
	}
	bar.SetXAxis(networks)
	for _, name := range names {
		bar.AddSeries(name, series[name])
	}
	return bar
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 构建界面
	page := components.NewPage()
	page.PageTitle = c.Title
	page.AddCharts(c.smithChart())
	if c.Networks != nil {
		caps, inds := Components(*c.Networks)
		page.AddCharts(barChart("电容", caps), barChart("电感", inds))
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { zap.L().Error("render", zap.Error(err)) }
