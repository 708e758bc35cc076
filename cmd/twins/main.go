package main

import (
	"os"

	"birthday-twins/internal/app"
)

func main() {
	if err := newRootCmd(app.NewPipeline).Execute(); err != nil {
		os.Exit(1)
	}
}
