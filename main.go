package main

import (
	"os"

	"github.com/Lumos-Labs-HQ/seedgen/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
