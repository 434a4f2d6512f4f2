package main

import (
	"github.com/IGS/ISCA/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
