// Package load 读取级联设计文件，支持 YAML 与文本网表两种格式
package load

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"rfmatch/element"
	_ "rfmatch/element/base"
	"rfmatch/load/ast"
	"rfmatch/unit"
)

// DefaultPoints 缺省采样数
const DefaultPoints = 10

var (
	// ErrZ0 参考阻抗无效
	ErrZ0 = errors.New("z0 must be positive")
	// ErrPoints 采样数无效
	ErrPoints = errors.New("points must be positive")
	// ErrUnit 单位无法识别
	ErrUnit = errors.New("unit not recognized")
)

// Quantity 带单位的数值
type Quantity struct {
	Val  float64 `yaml:"val"`
	Unit string  `yaml:"unit,omitempty"`
	Tol  float64 `yaml:"tol,omitempty"`
}

// Complex 复数阻抗(Ω)
type Complex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// ElementSpec 元件描述
type ElementSpec struct {
	Type        string     `yaml:"type"`
	Orientation string     `yaml:"orientation,omitempty"`
	Params      []Quantity `yaml:"params,omitempty"`
	Line        int        `yaml:"-"` // 网表行号，YAML 为 0
}

// Design 级联设计
type Design struct {
	Z0       float64       `yaml:"z0"`
	Freq     Quantity      `yaml:"freq"`
	Points   int           `yaml:"points,omitempty"`
	Source   Complex       `yaml:"source"`
	Elements []ElementSpec `yaml:"elements"`
}

// Load 读取 YAML 设计
func Load(r io.Reader) (*Design, error) {
	design := &Design{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(design); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("解析设计文件失败: %w", err)
	}
	if err := design.Validate(); err != nil {
		return nil, err
	}
	return design, nil
}

// LoadFile 按扩展名选择格式，.yaml/.yml 为 YAML，其余为网表
func LoadFile(path string) (*Design, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Load(file)
	}
	return LoadNetlist(file)
}

// LoadString 加载网表文本
func LoadString(s string) (*Design, error) {
	return LoadNetlist(strings.NewReader(s))
}

// LoadNetlist 加载网表
func LoadNetlist(r io.Reader) (*Design, error) {
	// 解析网表
	parseTree, err := ast.NewParseTree(r)
	if err != nil {
		return nil, err
	}
	if zap.L().Core().Enabled(zap.DebugLevel) {
		parseTree.Log()
	}
	design := &Design{Z0: 50, Freq: Quantity{Val: 1, Unit: "GHz"}}
	if err := design.directives(parseTree); err != nil {
		return nil, err
	}
	// 创建元件列表
	for _, elemNode := range parseTree.ElementNodes {
		spec := ElementSpec{Type: elemNode.Type, Line: elemNode.Line}
		if len(elemNode.Attrs) > 0 {
			spec.Orientation = elemNode.Attrs[0].Value
		}
		for _, val := range elemNode.Values {
			q, err := quantity(parseTree, val)
			if err != nil {
				return nil, err
			}
			spec.Params = append(spec.Params, q)
		}
		design.Elements = append(design.Elements, spec)
	}
	if err := design.Validate(); err != nil {
		return nil, err
	}
	return design, nil
}

// directives 读取 .z0 .freq .points .source 指令
func (design *Design) directives(parseTree *ast.ParseTree) error {
	for _, node := range parseTree.DirectiveNodes {
		if len(node.Values) == 0 {
			return fmt.Errorf("第 %d 行: 指令 .%s 缺少参数", node.Line, node.Name)
		}
		switch node.Name {
		case "z0":
			q, err := quantity(parseTree, node.Values[0])
			if err != nil {
				return err
			}
			design.Z0 = q.Val
		case "freq":
			q, err := quantity(parseTree, node.Values[0])
			if err != nil {
				return err
			}
			design.Freq = q
		case "points":
			design.Points = node.Values[0].ParseInt(0)
		case "source":
			var z complex128
			if len(node.Values) >= 2 {
				z = complex(node.Values[0].ParseFloat64(0), node.Values[1].ParseFloat64(0))
			} else {
				z = node.Values[0].ParseComplex128(0)
			}
			design.Source = Complex{Re: real(z), Im: imag(z)}
		default:
			return fmt.Errorf("第 %d 行: 未知指令 .%s", node.Line, node.Name)
		}
	}
	return nil
}

func quantity(parseTree *ast.ParseTree, val ast.Value) (Quantity, error) {
	val, err := parseTree.Resolve(val)
	if err != nil {
		return Quantity{}, err
	}
	num, suffix, tol, err := val.Quantity()
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Val: num, Unit: suffix, Tol: tol}, nil
}

// Validate 检查参考阻抗与采样数，采样数缺省为 DefaultPoints
func (design *Design) Validate() error {
	if design.Z0 <= 0 {
		return fmt.Errorf("%w: %g", ErrZ0, design.Z0)
	}
	if design.Points == 0 {
		design.Points = DefaultPoints
	}
	if design.Points < 0 {
		return fmt.Errorf("%w: %d", ErrPoints, design.Points)
	}
	if _, err := design.Freq.Param(); err != nil {
		return fmt.Errorf("freq: %w", err)
	}
	return nil
}

// Param 转为元件参数
func (q Quantity) Param() (element.Param, error) {
	u, ok := unit.Lookup(q.Unit)
	if !ok {
		return element.Param{}, fmt.Errorf("%w: %q", ErrUnit, q.Unit)
	}
	return element.Param{Val: q.Val, Unit: u, Tol: q.Tol}, nil
}

// Frequency 设计频率
func (design *Design) Frequency() unit.Frequency {
	p, _ := design.Freq.Param()
	return unit.NewFrequency(p.Val, p.Unit)
}

// SourceZ 源阻抗(Ω)
func (design *Design) SourceZ() complex128 {
	return complex(design.Source.Re, design.Source.Im)
}

// Build 创建元件实例
func (design *Design) Build() ([]element.Element, error) {
	out := make([]element.Element, 0, len(design.Elements))
	for i, spec := range design.Elements {
		e, err := spec.Build()
		if err != nil {
			if spec.Line > 0 {
				return nil, fmt.Errorf("元件 %d (第 %d 行): %w", i, spec.Line, err)
			}
			return nil, fmt.Errorf("元件 %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Build 创建单个元件
func (spec ElementSpec) Build() (element.Element, error) {
	orient, err := element.ParseOrientation(spec.Orientation)
	if err != nil {
		return nil, err
	}
	params := make([]element.Param, len(spec.Params))
	for i, q := range spec.Params {
		if params[i], err = q.Param(); err != nil {
			return nil, fmt.Errorf("参数 %d: %w", i, err)
		}
	}
	return element.New(spec.Type, params, orient)
}

// Save 写出 YAML 设计
func (design *Design) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(design); err != nil {
		return err
	}
	return enc.Close()
}

// Export 导出网表格式
func (design *Design) Export(w io.Writer) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, ".z0 %s\n", strconv.FormatFloat(design.Z0, 'g', -1, 64))
	fmt.Fprintf(writer, ".freq %s\n", ast.FormatQuantity(design.Freq.Val, design.Freq.Unit, 0))
	fmt.Fprintf(writer, ".points %d\n", design.Points)
	fmt.Fprintf(writer, ".source %s %s\n",
		strconv.FormatFloat(design.Source.Re, 'g', -1, 64),
		strconv.FormatFloat(design.Source.Im, 'g', -1, 64))
	// 导出元件
	for i, spec := range design.Elements {
		fmt.Fprintf(writer, "%s %d", spec.Type, i+1)
		if spec.Orientation != "" {
			writer.WriteString(" " + ast.FormatList([]string{spec.Orientation}))
		}
		if len(spec.Params) > 0 {
			items := make([]string, len(spec.Params))
			for j, q := range spec.Params {
				items[j] = ast.FormatQuantity(q.Val, q.Unit, q.Tol)
			}
			writer.WriteString(" " + ast.FormatList(items))
		}
		writer.WriteRune('\n')
	}
	return writer.Flush()
}
