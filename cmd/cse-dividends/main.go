package main

import "github.com/rwickrama/cse-dividends/internal/cli"

func main() {
	cli.Execute()
}
