// Command task runs registered grift tasks, e.g. `task db:seed`.
package main

import (
	"fmt"
	"os"

	"github.com/gobuffalo/grift/grift"

	_ "github.com/rubineta/claims-api/grifts"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: task <name>")
		os.Exit(1)
	}

	name := os.Args[1]
	ctx := grift.NewContext(name)
	ctx.Args = os.Args[2:]

	if err := grift.Run(name, ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
