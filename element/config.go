package element

import (
	"fmt"
	"strings"

	"rfmatch/unit"
)

// Orientation 元件连接方向
type Orientation uint8

const (
	Series Orientation = iota // 串联
	Shunt                     // 并联
)

// ParseOrientation 解析方向字符串
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "series", "s", "":
		return Series, nil
	case "shunt", "parallel", "p":
		return Shunt, nil
	}
	return Series, fmt.Errorf("未知的元件方向 '%s'", s)
}

func (o Orientation) String() string {
	if o == Shunt {
		return "shunt"
	}
	return "series"
}

// Param 元件参数：显示值、单位、容差(%)
type Param struct {
	Val  float64
	Unit unit.Unit
	Tol  float64
}

// P 创建参数
func P(val float64, u unit.Unit) Param { return Param{Val: val, Unit: u} }

// SI 参数的基本单位值，伪单位保持原值
func (p Param) SI() float64 { return unit.Unscale(p.Val, p.Unit) }

// Config 元件配置结构体，存储元件的静态配置信息。
// 这些配置在元件注册时初始化，所有实例共享。
type Config struct {
	Name      string      // 元件名称（如 "capacitor"）。
	Tags      []string    // 标签别名（如 "sc"、"pc"）。
	ValueName []string    // 参数名称。
	ValueInit []Param     // 初始化数据，参数缺省值。
	Orient    Orientation // 固定方向。
	Fixed     bool        // 方向是否固定。

	// New 由公共数据构造具体元件
	New func(base *Base) Element
}

// GetName 元件名称。
func (config *Config) GetName() string {
	return strings.ToUpper(config.Name)
}

// ValueNum 获取元件的参数数量。
func (config *Config) ValueNum() int { return len(config.ValueInit) }

// Fill 用缺省值补齐参数
func (config *Config) Fill(params []Param) []Param {
	out := make([]Param, config.ValueNum())
	copy(out, config.ValueInit)
	copy(out, params)
	return out
}
