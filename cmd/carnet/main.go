// Package main is the entry point for the carnet address book.
package main

import "github.com/leapstack-labs/carnet/internal/cli"

func main() {
	cli.Execute()
}
