// Command movediff prints line edit scripts and churn counts that tell moved
// lines apart from added ones.
package main

import (
	"os"

	"github.com/dacharyc/movediff/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
