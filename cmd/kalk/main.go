// kalk is the command line client of the pricing calculator.
package main

import (
	"os"

	"github.com/Simplici0/kalkulator/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
