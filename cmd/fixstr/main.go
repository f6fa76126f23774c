package main

import (
	"os"

	"github.com/rawbytedev/fixedstr/cmd/fixstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
