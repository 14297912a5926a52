package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
