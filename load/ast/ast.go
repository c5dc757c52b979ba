// Package ast 提供级联网表解析的抽象语法树（AST）功能。
// 它能够解析包含元件定义、指令和注释的网表文本，
// 并构建相应的语法树结构供后续处理使用。
//
// 网表示例：
//
//	.z0 50
//	.freq 280GHz
//	.value cap 20fF
//	sc 1 [series] [0Q, %cap]
//	tl 2 [100, 100um, 1, 50]
package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// 常量定义 - 用于词法分析和语法分析的关键字和符号
const (
	tokenValue             = ".value" // 值设置命令
	tokenDirective         = "."      // 指令前缀
	tokenNewline           = "\n"     // 换行符
	tokenSpace             = " "      // 空格
	tokenTab               = "	"      // 制表符
	tokenLBracket          = "["      // 左方括号
	tokenRBracket          = "]"      // 右方括号
	tokenComma             = ","      // 逗号分隔符
	tokenCommentHash       = "#"      // # 注释
	tokenCommentLine       = "//"     // // 行注释
	tokenCommentBlockStart = "/*"     // /* 块注释开始
	tokenCommentBlockEnd   = "*/"     // */ 块注释结束
)

// ElementNode 表示元件定义节点
type ElementNode struct {
	Type   string  // 元件标签，如 "sc", "tl"
	ID     string  // 元件ID，如 "1"
	Attrs  []Value // 属性列表，如方向
	Values []Value // 值列表
	Line   int     // 行号
}

// DirectiveNode 表示指令节点，如 .z0 50
type DirectiveNode struct {
	Name   string  // 指令名，不含点号
	Values []Value // 参数
	Line   int     // 行号
}

// CommentNode 表示注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

// ParseTree 解析树
type ParseTree struct {
	ElementNodes   []*ElementNode    // 元件列表
	DirectiveNodes []*DirectiveNode  // 指令列表
	CommentNodes   []*CommentNode    // 注释列表
	ValueNodes     map[string]string // 变量列表
}

// Directive 按名称查找最后一次出现的指令
func (parseTree *ParseTree) Directive(name string) (*DirectiveNode, bool) {
	for i := len(parseTree.DirectiveNodes) - 1; i >= 0; i-- {
		if parseTree.DirectiveNodes[i].Name == name {
			return parseTree.DirectiveNodes[i], true
		}
	}
	return nil, false
}

// Resolve 替换变量引用，未定义的变量返回错误
func (parseTree *ParseTree) Resolve(val Value) (Value, error) {
	if !val.IsVar {
		return val, nil
	}
	v, ok := parseTree.ValueNodes[val.Value]
	if !ok {
		return val, errorAtLine(val.Line, "未定义的变量 '%s'", val.Value)
	}
	return Value{Value: v, Line: val.Line}, nil
}

// Log 输出解析树用于调试
func (parseTree *ParseTree) Log() {
	log := zap.L()
	log.Debug("解析成功",
		zap.Int("elements", len(parseTree.ElementNodes)),
		zap.Int("directives", len(parseTree.DirectiveNodes)),
		zap.Int("values", len(parseTree.ValueNodes)),
		zap.Int("comments", len(parseTree.CommentNodes)))
	for _, n := range parseTree.ElementNodes {
		log.Debug("元件",
			zap.String("type", n.Type), zap.String("id", n.ID), zap.Int("line", n.Line),
			zap.Strings("attrs", valueStrings(n.Attrs)), zap.Strings("values", valueStrings(n.Values)))
	}
	for _, n := range parseTree.DirectiveNodes {
		log.Debug("指令", zap.String("name", n.Name), zap.Strings("values", valueStrings(n.Values)), zap.Int("line", n.Line))
	}
	for name, v := range parseTree.ValueNodes {
		log.Debug("值设置", zap.String("name", name), zap.String("value", v))
	}
}

func valueStrings(values []Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// NewParseTree 生成网表解析树（流式处理，不先收集 tokens）
func NewParseTree(r io.Reader) (parseTree *ParseTree, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(SplitTokens)
	// 创建解析树
	parseTree = &ParseTree{
		ValueNodes: map[string]string{},
	}
	lineNum := 1
	var pendingToken *string = nil
	for {
		var token string
		if pendingToken != nil {
			token = *pendingToken
			pendingToken = nil
		} else {
			if !scanner.Scan() {
				break
			}
			token = scanner.Text()
		}
		// 处理换行符
		if token == tokenNewline {
			lineNum++
			continue
		}
		// 跳过空格和制表符
		if token == tokenSpace || token == tokenTab {
			continue
		}
		// 处理注释
		if parseComment(token, lineNum, parseTree) {
			continue
		}
		// 处理 .value 命令
		if token == tokenValue {
			if err := parseValueCommandFromScanner(scanner, lineNum, parseTree); err != nil {
				return nil, err
			}
			continue
		}
		// 处理其他指令，指令占据整行
		if strings.HasPrefix(token, tokenDirective) && len(token) > 1 && isLetter(token[1]) {
			if parseDirectiveFromScanner(scanner, token[1:], lineNum, parseTree) {
				lineNum++
			}
			continue
		}
		// 处理元件定义
		if len(token) > 0 && isLetter(token[0]) {
			next, err := parseElementDefinitionFromScanner(scanner, token, lineNum, parseTree)
			if err != nil {
				return nil, err
			}
			// 如果还有未处理的 token，保存它供下一次循环处理
			if next != "" {
				pendingToken = &next
			}
			continue
		}
		return nil, errorAtLine(lineNum, "无法识别的内容 '%s'", token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取网表时出错: %w", err)
	}
	return parseTree, nil
}

// parseValueListFromScanner 从 scanner 解析值列表
func parseValueListFromScanner(scanner *bufio.Scanner, lineNum int) ([]Value, error) {
	var values []Value
	for scanner.Scan() {
		token := scanner.Text()
		// 如果遇到 ]，表示列表结束
		if token == tokenRBracket {
			return values, nil
		}
		if token == tokenNewline {
			return nil, errorAtLine(lineNum, "列表缺少结束标记 ]")
		}
		// 跳过逗号分隔符、空格和制表符
		if token == tokenComma || token == tokenSpace || token == tokenTab {
			continue
		}
		values = append(values, newValue(token, lineNum))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取值列表时出错: %w", err)
	}
	return nil, errorAtLine(lineNum, "列表缺少结束标记 ]")
}

// newValue 变量以 % 开头
func newValue(token string, lineNum int) Value {
	if len(token) > 0 && token[0] == '%' {
		return Value{Value: token[1:], Line: lineNum, IsVar: true}
	}
	return Value{Value: token, Line: lineNum}
}

// parseComment 识别 #、// 与 /* */ 三种注释，返回 token 是否为注释
func parseComment(token string, lineNum int, parseTree *ParseTree) bool {
	var text string
	switch {
	case strings.HasPrefix(token, tokenCommentHash):
		text = token[len(tokenCommentHash):]
	case strings.HasPrefix(token, tokenCommentLine):
		text = token[len(tokenCommentLine):]
	case strings.HasPrefix(token, tokenCommentBlockStart):
		text = strings.TrimSuffix(token[len(tokenCommentBlockStart):], tokenCommentBlockEnd)
	default:
		return false
	}
	parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{Text: text, Line: lineNum})
	return true
}

// nextWord 读取下一个非空白 token，遇到换行或结束时返回 false
func nextWord(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		token := scanner.Text()
		if token == tokenSpace || token == tokenTab {
			continue
		}
		if token == tokenNewline {
			return token, false
		}
		return token, true
	}
	return "", false
}

// parseValueCommandFromScanner 从 scanner 解析 .value 命令
func parseValueCommandFromScanner(scanner *bufio.Scanner, lineNum int, parseTree *ParseTree) error {
	name, ok := nextWord(scanner)
	if !ok {
		return errorAtLine(lineNum, ".value 命令缺少名称")
	}
	valueStr, ok := nextWord(scanner)
	if !ok {
		return errorAtLine(lineNum, ".value 命令缺少值")
	}
	parseTree.ValueNodes[name] = valueStr
	return nil
}

// parseDirectiveFromScanner 读取指令直到行尾，返回是否消耗了换行符
func parseDirectiveFromScanner(scanner *bufio.Scanner, name string, lineNum int, parseTree *ParseTree) bool {
	node := &DirectiveNode{Name: strings.ToLower(name), Line: lineNum}
	parseTree.DirectiveNodes = append(parseTree.DirectiveNodes, node)
	for scanner.Scan() {
		token := scanner.Text()
		switch token {
		case tokenNewline:
			return true
		case tokenSpace, tokenTab, tokenComma:
			continue
		}
		node.Values = append(node.Values, newValue(token, lineNum))
	}
	return false
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("第 %d 行: %s", lineNum, msg)
}

// parseElementDefinitionFromScanner 从 scanner 解析元件定义
// 格式: 标签 ID [属性] [值]
// 标签与 ID 可以连写，两个列表都可省略；只有一个列表且全为非数字时视为属性
// 返回读多的 token
func parseElementDefinitionFromScanner(scanner *bufio.Scanner, elementType string, lineNum int, parseTree *ParseTree) (string, error) {
	// 读取元件ID，允许与标签连写，如 sc1
	elementType, elementID := splitID(elementType)
	if elementID == "" {
		var ok bool
		if elementID, ok = nextWord(scanner); !ok {
			return "", errorAtLine(lineNum, "缺少元件 ID")
		}
	}
	if !isNumber(elementID) {
		return "", errorAtLine(lineNum, "元件 ID 必须是数字")
	}
	var lists [][]Value
	next := ""
	for len(lists) < 2 {
		token, ok := nextWord(scanner)
		if !ok {
			next = token
			break
		}
		if token != tokenLBracket {
			next = token
			break
		}
		list, err := parseValueListFromScanner(scanner, lineNum)
		if err != nil {
			return "", err
		}
		lists = append(lists, list)
	}
	node := &ElementNode{
		Type: elementType,
		ID:   elementID,
		Line: lineNum,
	}
	switch {
	case len(lists) == 2:
		node.Attrs, node.Values = lists[0], lists[1]
	case len(lists) == 1 && allWords(lists[0]):
		node.Attrs = lists[0]
	case len(lists) == 1:
		node.Values = lists[0]
	}
	parseTree.ElementNodes = append(parseTree.ElementNodes, node)
	return next, nil
}

// splitID 分离标签末尾的数字
func splitID(token string) (typeName, id string) {
	i := len(token)
	for i > 0 && token[i-1] >= '0' && token[i-1] <= '9' {
		i--
	}
	return token[:i], token[i:]
}

// allWords 列表全部为非数字且非变量
func allWords(values []Value) bool {
	for _, v := range values {
		if v.IsVar || isNumber(v.Value) {
			return false
		}
	}
	return len(values) > 0
}

// isLetter 检查是否是字母
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isNumber 检查字符串是否表示数字
func isNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '.' {
		return len(s) > 1 && s[1] >= '0' && s[1] <= '9'
	}
	// 检查第一个字符，如果是数字或负号开头
	if s[0] == '-' || s[0] == '+' {
		if len(s) > 1 {
			return s[1] >= '0' && s[1] <= '9' || s[1] == '.'
		}
		return false
	}
	return s[0] >= '0' && s[0] <= '9'
}

// isDelimiter 分隔符
func isDelimiter(c byte) bool {
	switch c {
	case ' ', '	', '\n', '\r', ',', ']', '[':
		return true
	}
	return false
}

// SplitTokens 分割标识符
// 数字连同其单位后缀作为一个 token，如 20fF、100um/5
func SplitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := range data {
		switch data[i] {
		case '#':
			if i != 0 {
				return i, data[:i], nil
			}
			return scanLine(data, atEOF)
		case '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '+', '-':
			if i != 0 {
				continue
			}
			for i < len(data) && !isDelimiter(data[i]) {
				i++
			}
			if i == len(data) && !atEOF {
				return 0, nil, nil
			}
			return i, data[:i], nil
		case '/':
			if len(data) > i+1 {
				switch data[i+1] {
				case '*':
					if i != 0 {
						return i, data[:i], nil
					}
					if j := bytes.Index(data, []byte("*/")); j >= 0 {
						j += 2
						return j, data[0:j], nil
					}
					if !atEOF {
						return 0, nil, nil
					}
				case '/':
					if i != 0 {
						return i, data[:i], nil
					}
					return scanLine(data, atEOF)
				}
			}
		case '\r':
			if i != 0 {
				return i, data[:i], nil
			}
			return 1, nil, nil
		case ' ', '	', '\n', ',', ']', '[':
			if i != 0 {
				return i, data[:i], nil
			}
			return i + 1, data[0 : i+1], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// scanLine 读到行尾，不消耗换行符
func scanLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
