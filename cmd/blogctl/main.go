package main

import (
	"os"

	"github.com/labstack/gommon/log"

	"terminal-terrace/blog/internal/cli"
)

func main() {
	app := &cli.App{}
	defer app.Close()

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		log.Error(err)
		app.Close()
		os.Exit(1)
	}
}
