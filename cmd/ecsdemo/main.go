package main

import "os"

func main() {
	// cobra prints the error to stderr before Execute returns
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
