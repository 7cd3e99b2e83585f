package main

import (
	"os"

	"gcl/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
