package main

import (
	"github.com/chosler/mobius4d/cmd"
)

func main() {
	cmd.Execute()
}
