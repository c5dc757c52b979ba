package element

import (
	"rfmatch/unit"
)

// Base 元件公共数据，具体元件嵌入后实现 Element 的描述部分
type Base struct {
	Cfg    *Config
	Kind   ElementType
	Params []Param
	Orient Orientation
}

// Type 元件类型标识
func (base *Base) Type() ElementType { return base.Kind }

// Config 元件配置
func (base *Base) Config() *Config { return base.Cfg }

// Labels 参数名称
func (base *Base) Labels() []string { return base.Cfg.ValueName }

// Values 参数显示值
func (base *Base) Values() []float64 {
	out := make([]float64, len(base.Params))
	for i, p := range base.Params {
		out[i] = p.Val
	}
	return out
}

// Units 参数单位
func (base *Base) Units() []unit.Unit {
	out := make([]unit.Unit, len(base.Params))
	for i, p := range base.Params {
		out[i] = p.Unit
	}
	return out
}

// Tols 参数容差
func (base *Base) Tols() []float64 {
	out := make([]float64, len(base.Params))
	for i, p := range base.Params {
		out[i] = p.Tol
	}
	return out
}

// Orientation 串联或并联
func (base *Base) Orientation() Orientation { return base.Orient }

// Param 第i个参数
func (base *Base) Param(i int) Param { return base.Params[i] }

// SI 第i个参数的基本单位值
func (base *Base) SI(i int) float64 { return base.Params[i].SI() }

// SetParam 修改第i个参数
func (base *Base) SetParam(i int, p Param) { base.Params[i] = p }
