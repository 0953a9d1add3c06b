// Package main is the entry point for the libria application.
package main

import (
	"github.com/libria-cli/libria/cmd"
	"github.com/libria-cli/libria/config"
	"github.com/libria-cli/libria/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
