// cmd/wx-config/main.go
package main

import (
	"os"

	"github.com/arc-language/wxconfig/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
