package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapmux/pathlens/internal/logging"
)

var version = "dev"

func main() {
	logging.Setup()

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "run":
			code, err := runCommand(os.Args[2:])
			if err != nil {
				slog.Error("fatal", "error", err)
				os.Exit(1)
			}
			os.Exit(code)
		case "version":
			fmt.Println(version)
			return
		}
	}

	// Default mode: clean tokens from args, or scan stdin.
	if err := runClean(os.Args[1:]); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
