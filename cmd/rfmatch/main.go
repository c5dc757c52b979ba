// rfmatch 命令行：匹配网络、圆图轨迹、共轭匹配、阻抗表示转换与绘图
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
