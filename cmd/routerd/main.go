// Copyright 2026 The routerd Authors
// This file is part of the routerd library.
//
// The routerd library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The routerd library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the routerd library. If not, see <http://www.gnu.org/licenses/>.

// routerd is a distance-vector routing daemon: it maintains a table of
// reachable networks, exchanges it with configured neighbors over HTTP on
// a fixed interval, and ages out routes nobody has refreshed in a while.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v1"

	"github.com/eth-classic/routerd/identity"
)

// Version is the application revision identifier, settable at link time
// as in: go build -ldflags "-X main.Version=`git describe --tags`"
var Version = "source"

func makeCLIApp() *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = Version
	app.Usage = "distance-vector routing daemon"
	app.HideVersion = true

	app.Commands = []cli.Command{
		serveCommand,
		routesCommand,
		{
			Action: printVersion,
			Name:   "version",
			Usage:  "Print routerd version and instance identity",
		},
	}
	return app
}

func printVersion(ctx *cli.Context) error {
	fmt.Printf("routerd %s (instance %s)\n", Version, identity.Resolve())
	return nil
}

func main() {
	if err := makeCLIApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
