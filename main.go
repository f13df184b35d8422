package main

import (
	"os"

	"scribbles/service"
)

func main() {
	if err := service.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
