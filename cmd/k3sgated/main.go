package main

import (
	"github.com/k3sgate/k3sgate/pkg/cli"
)

func main() {
	cli.Execute()
}
