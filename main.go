package main

import (
	"os"

	"github.com/mlutz/kartei/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
