package main

import (
	"mucal/cli"
)

func main() {
	cli.Execute()
}
