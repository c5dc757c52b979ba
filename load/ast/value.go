package ast

import (
	"strconv"
	"strings"
)

// Value 表示一个值，可以是数字、带单位的数量或变量名
type Value struct {
	Value string // 原始值
	IsVar bool   // 是否为变量
	Line  int    // 行号
}

// String 原始文本，变量带 % 前缀
func (value Value) String() string {
	if value.IsVar {
		return "%" + value.Value
	}
	return value.Value
}

// ParseInt 解析整数
func (value Value) ParseInt(defaultValue int) int {
	if val, err := strconv.Atoi(value.Value); err == nil {
		return val
	}
	return defaultValue
}

// ParseFloat64 解析64位浮点数
func (value Value) ParseFloat64(defaultValue float64) float64 {
	if val, err := strconv.ParseFloat(value.Value, 64); err == nil {
		return val
	}
	return defaultValue
}

// ParseString 安全获取字符串
func (value Value) ParseString(str string) string {
	if value.Value != "" {
		return value.Value
	}
	return str
}

// ParseComplex128 解析128位复数，如 50-10j
func (value Value) ParseComplex128(defaultValue complex128) complex128 {
	s := strings.ReplaceAll(value.Value, "j", "i")
	if val, err := strconv.ParseComplex(s, 128); err == nil {
		return val
	}
	return defaultValue
}

// Quantity 拆分数量为数值、单位后缀与容差(%)
// 形如 20fF、100um/5、0.25λ、50
func (value Value) Quantity() (num float64, suffix string, tol float64, err error) {
	s := value.Value
	if i := strings.IndexByte(s, '/'); i >= 0 {
		if tol, err = strconv.ParseFloat(strings.TrimSuffix(s[i+1:], "%"), 64); err != nil {
			return 0, "", 0, errorAtLine(value.Line, "容差无效 '%s'", s)
		}
		s = s[:i]
	}
	for i := len(s); i > 0; i-- {
		if num, err = strconv.ParseFloat(s[:i], 64); err == nil {
			return num, s[i:], tol, nil
		}
	}
	return 0, "", 0, errorAtLine(value.Line, "数值无效 '%s'", value.Value)
}
