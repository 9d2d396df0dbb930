package main

import (
	"os"

	"github.com/rubineta/claims-api/actions"
	"github.com/rubineta/claims-api/listeners"
)

// main is the starting point for your Buffalo application.
// You can feel free and add to this `main` method, change
// what it does, etc...
// All we ask is that, at some point, you make sure to
// call `app.Serve()`, unless you don't want to start your
// application that is. :)
func main() {
	listeners.RegisterListeners()

	app := actions.App()
	if err := app.Serve(); err != nil {
		if err.Error() != "context canceled" {
			panic(err)
		}
		os.Exit(0)
	}
}
