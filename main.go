package main

import (
	"os"

	"inboxtags/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
