package main

import "github.com/gridhunt/gridhunt/internal/cli"

func main() {
	cli.Execute()
}
