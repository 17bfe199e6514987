// gpacalc 命令行版绩点计算器：读取课程文件或命令行参数，输出结果或导出 Excel 报告。
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
