package main

import (
	"os"

	"github.com/ZeroDay-Lk/vuldb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
