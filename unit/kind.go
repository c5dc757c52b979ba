package unit

// Kind 物理量类型
type Kind int

const (
	Farad Kind = iota // 电容
	Henry             // 电感
	Ohm               // 电阻
	Hz                // 频率
)

func (k Kind) String() string {
	switch k {
	case Farad:
		return "F"
	case Henry:
		return "H"
	case Ohm:
		return "Ω"
	case Hz:
		return "Hz"
	}
	return ""
}

// Format 单位显示字符串，如 fF、pH、Ω、GHz
func Format(u Unit, kind Kind) string {
	if u == Micro {
		return "μ" + kind.String()
	}
	return u.String() + kind.String()
}
