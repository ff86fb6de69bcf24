package main

import (
	"github.com/shouni/go-article-insight/cmd"
)

// main 関数は、cmd パッケージのエントリポイントを呼び出すだけの薄いラッパーです。
func main() {
	cmd.Execute()
}
