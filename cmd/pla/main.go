package main

import (
	"github.com/YuminosukeSato/gopla/cmd/pla/cmd"
)

func main() {
	cmd.Execute()
}
