package main

import (
	"os"

	"github.com/theboiblazin2026-oss/pocket-academy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
