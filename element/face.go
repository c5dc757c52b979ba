package element

import (
	"fmt"
	"strings"

	"rfmatch/smith"
	"rfmatch/unit"
)

// ErrNotRecognized 元件类型无法识别
var ErrNotRecognized = smith.ErrNotRecognized

// ElementType 元件类型标识，使用无符号整数表示
// 每个元件类型都有一个唯一的ElementType值，用于在ElementLitt中标识和查找
type ElementType uint

// Element 元件接口
// 每个元件提供阻抗、描述信息、方向与圆图轨迹
type Element interface {
	Type() ElementType        // 元件类型标识
	Config() *Config          // 元件配置
	Labels() []string         // 参数名称
	Values() []float64        // 参数显示值
	Units() []unit.Unit       // 参数单位
	Tols() []float64          // 参数容差(%)
	Orientation() Orientation // 串联或并联

	// Impedance 指定频率下的阻抗(Ω)
	Impedance(f unit.Frequency) complex128
	// Cascade 级联后的归一化输入阻抗
	Cascade(f unit.Frequency, zin complex128, z0 float64) complex128
	// Arc 从归一化输入阻抗 zin 开始的圆图轨迹，共 npts+1 个点
	Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) ArcTrace
}

// ElementLitt 元件类型注册表，全局映射表
// 键：ElementType（元件类型标识）
// 值：*Config（元件配置与构造函数）
var ElementLitt = map[ElementType]*Config{}

// ElementListName 标签到元件类型的索引
var ElementListName = map[string]ElementType{}

// AddElement 注册元件类型到全局元件列表
// 元件类型或标签重复注册时触发 panic
func AddElement(eleType ElementType, config *Config) ElementType {
	if _, ok := ElementLitt[eleType]; ok {
		panic(fmt.Sprintf("元件重复注册: %d", eleType))
	}
	ElementLitt[eleType] = config
	for _, tag := range append([]string{config.Name}, config.Tags...) {
		tag = strings.ToLower(tag)
		if old, ok := ElementListName[tag]; ok {
			panic(fmt.Sprintf("元件标签重复注册: %s (%d, %d)", tag, old, eleType))
		}
		ElementListName[tag] = eleType
	}
	return eleType
}

// Lookup 按标签查找元件类型
func Lookup(tag string) (ElementType, bool) {
	t, ok := ElementListName[strings.ToLower(strings.TrimSpace(tag))]
	return t, ok
}

// Config 获取指定元件类型的配置信息
// 返回：指向元件配置结构体的指针，如果类型未注册则返回nil
func (t ElementType) Config() *Config {
	return ElementLitt[t]
}

// String 元件名称
func (t ElementType) String() string {
	if config := t.Config(); config != nil {
		return config.Name
	}
	return fmt.Sprintf("ElementType(%d)", uint(t))
}

// New 根据标签创建元件
// 缺省参数取 ValueInit，固定方向的元件忽略 orient
func New(tag string, params []Param, orient Orientation) (Element, error) {
	t, ok := Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRecognized, tag)
	}
	return NewElement(t, params, orient)
}

// NewElement 根据元件类型创建元件
func NewElement(t ElementType, params []Param, orient Orientation) (Element, error) {
	config := t.Config()
	if config == nil {
		return nil, fmt.Errorf("%w: %d", ErrNotRecognized, uint(t))
	}
	if len(params) > config.ValueNum() {
		return nil, fmt.Errorf("元件 %s 参数过多: 需要 %d，得到 %d", config.Name, config.ValueNum(), len(params))
	}
	if config.Fixed {
		orient = config.Orient
	}
	return config.New(&Base{
		Cfg:    config,
		Kind:   t,
		Params: config.Fill(params),
		Orient: orient,
	}), nil
}
