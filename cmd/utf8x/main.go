package main

import (
	"os"

	"github.com/msto63/utf8x/cmd/utf8x/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
