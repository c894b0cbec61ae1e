package main

import (
	"os"

	"github.com/hsiuhsiu/lsss-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
