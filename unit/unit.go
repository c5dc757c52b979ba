package unit

import "math"

// C 光速(m/s)
const C = 3e8

// Unit 工程单位前缀
// 除数量级前缀外还包含 Q/K/N/λ 伪单位，仅作为选择器使用
type Unit int

const (
	Base   Unit = iota // 基本单位
	Tera               // 太 1e12
	Giga               // 吉 1e9
	Mega               // 兆 1e6
	Kilo               // 千 1e3
	Milli              // 毫 1e-3
	Micro              // 微 1e-6
	Nano               // 纳 1e-9
	Pico               // 皮 1e-12
	Femto              // 飞 1e-15
	Lambda             // 波长
	Q                  // 品质因数
	K                  // 耦合系数
	N                  // 匝数比
)

// unitLitt 单位别名表
var unitLitt = map[string]Unit{
	"tera": Tera, "T": Tera, "THz": Tera, "thz": Tera,
	"giga": Giga, "G": Giga, "GHz": Giga, "ghz": Giga, "GΩ": Giga,
	"mega": Mega, "M": Mega, "MHz": Mega, "mhz": Mega, "MΩ": Mega,
	"kilo": Kilo, "k": Kilo, "kHz": Kilo, "khz": Kilo, "kΩ": Kilo,
	"milli": Milli, "m": Milli, "mΩ": Milli, "mF": Milli, "mH": Milli,
	"micro": Micro, "u": Micro, "uΩ": Micro, "μΩ": Micro, "uF": Micro, "μF": Micro, "uH": Micro, "μH": Micro, "um": Micro, "μm": Micro,
	"nano": Nano, "n": Nano, "nΩ": Nano, "nF": Nano, "nH": Nano,
	"pico": Pico, "p": Pico, "pΩ": Pico, "pF": Pico, "pH": Pico,
	"femto": Femto, "f": Femto, "fΩ": Femto, "fF": Femto, "fH": Femto,
	"lambda": Lambda, "λ": Lambda, "wavelength": Lambda,
	"Q": Q, "q": Q,
	"K": K,
	"N": N,
}

// Parse 解析单位字符串，无法识别时返回 Base
func Parse(s string) Unit {
	if u, ok := unitLitt[s]; ok {
		return u
	}
	return Base
}

// Lookup 解析单位字符串，空串与无前缀的量纲（Ω、F、H、Hz）为 Base
func Lookup(s string) (Unit, bool) {
	switch s {
	case "", "Ω", "ohm", "F", "H", "Hz", "hz":
		return Base, true
	}
	u, ok := unitLitt[s]
	return u, ok
}

// String 单位前缀
func (u Unit) String() string {
	switch u {
	case Tera:
		return "T"
	case Giga:
		return "G"
	case Mega:
		return "M"
	case Kilo:
		return "k"
	case Milli:
		return "m"
	case Micro:
		return "u"
	case Nano:
		return "n"
	case Pico:
		return "p"
	case Femto:
		return "f"
	case Lambda:
		return "λ"
	case Q:
		return "Q"
	case K:
		return "K"
	case N:
		return "N"
	}
	return ""
}

// Scale 基本单位到显示单位的倍率
// Lambda 没有频率信息时为 1，需要使用 ScaleAt
func (u Unit) Scale() float64 {
	switch u {
	case Tera:
		return 1e-12
	case Giga:
		return 1e-9
	case Mega:
		return 1e-6
	case Kilo:
		return 1e-3
	case Milli:
		return 1e3
	case Micro:
		return 1e6
	case Nano:
		return 1e9
	case Pico:
		return 1e12
	case Femto:
		return 1e15
	}
	return 1
}

// ScaleAt 带频率与介电常数的倍率，Lambda 为 c/(f·√εr)
func (u Unit) ScaleAt(freq, er float64) float64 {
	if u == Lambda {
		return LambdaScale(freq, er)
	}
	return u.Scale()
}

// Unscale 显示单位到基本单位的倍率
func (u Unit) Unscale() float64 { return 1 / u.Scale() }

// IsPseudo 是否为伪单位
func (u Unit) IsPseudo() bool { return u == Q || u == K || u == N }

// LambdaScale 波长 c/(f·√εr)
func LambdaScale(freq, er float64) float64 {
	return C / (freq * math.Sqrt(er))
}

// Scale 转换到显示值
func Scale(val float64, u Unit) float64 { return val * u.Scale() }

// Unscale 转换到基本单位
func Unscale(val float64, u Unit) float64 { return val * u.Unscale() }

// Length 物理长度(m)
// Lambda 单位表示波长的倍数
func Length(val float64, u Unit, freq, er float64) float64 {
	if u == Lambda {
		return val * LambdaScale(freq, er)
	}
	return Unscale(val, u)
}
