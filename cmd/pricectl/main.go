package main

import (
	"os"

	"github.com/Andydrums87/bookabash-sub001/cmd/pricectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
