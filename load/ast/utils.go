package ast

import (
	"strconv"
	"strings"
)

// FormatQuantity 数量转为网表文本
func FormatQuantity(num float64, suffix string, tol float64) string {
	s := strconv.FormatFloat(num, 'g', -1, 64) + suffix
	if tol != 0 {
		s += "/" + strconv.FormatFloat(tol, 'g', -1, 64)
	}
	return s
}

// FormatList 值列表转为网表文本
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
