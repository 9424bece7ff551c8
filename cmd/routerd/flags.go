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

package main

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/eth-classic/routerd/router"
)

// These are all the command line flags routerd supports. Defined once so
// their names and help text stay consistent across subcommands, the way
// the teacher's flags.go centralizes its CLI surface.
var (
	PortFlag = cli.IntFlag{
		Name:  "port, p",
		Usage: "TCP port to listen on",
		Value: 5000,
	}
	NeighborsFileFlag = cli.StringFlag{
		Name:  "file, f",
		Usage: "Path to the neighbor CSV file (vizinho,custo header); required",
	}
	NetworkFlag = cli.StringFlag{
		Name:  "network",
		Usage: "CIDR of the network this instance originates",
	}
	IntervalFlag = cli.DurationFlag{
		Name:  "interval",
		Usage: "Advertiser period",
		Value: router.DefaultInterval,
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Log verbosity: 0=error 1=warn 2=info 3=detail 4=debug",
		Value: 2,
	}
	ServerFlag = cli.StringFlag{
		Name:  "server",
		Usage: "routerd HTTP address to query (routes subcommand)",
		Value: "127.0.0.1:5000",
	}
	NoColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable ANSI color output (routes subcommand)",
	}
)
