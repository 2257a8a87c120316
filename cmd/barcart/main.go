package main

import "github.com/mchmarny/barcart/pkg/cli"

func main() {
	cli.Execute()
}
