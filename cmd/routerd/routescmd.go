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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	wordwrap "github.com/mitchellh/go-wordwrap"
	"gopkg.in/urfave/cli.v1"
)

var routesCommand = cli.Command{
	Action: showRoutes,
	Name:   "routes",
	Usage:  "Print a routerd instance's routing table",
	Flags: []cli.Flag{
		ServerFlag,
		NoColorFlag,
	},
}

type routesView struct {
	MyAddress      string                  `json:"my_address"`
	MyNetwork      string                  `json:"my_network"`
	UpdateInterval int                     `json:"update_interval"`
	InstanceID     string                  `json:"instance_id"`
	Vizinhos       map[string]int          `json:"vizinhos"`
	RoutingTable   map[string]routeEntry   `json:"routing_table"`
}

type routeEntry struct {
	Cost       int    `json:"cost"`
	NextHop    string `json:"next_hop"`
	LastUpdate int64  `json:"last_update"`
}

func showRoutes(ctx *cli.Context) error {
	server := ctx.String(ServerFlag.Name)
	resp, err := http.Get(fmt.Sprintf("http://%s/routes", server))
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	defer resp.Body.Close()

	var view routesView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return fmt.Errorf("routes: decoding response from %s: %w", server, err)
	}

	out := colorableStdout()
	noColor := ctx.Bool(NoColorFlag.Name) || !isatty.IsTerminal(os.Stdout.Fd())

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)
	if noColor {
		bold.DisableColor()
		dim.DisableColor()
	}

	bold.Fprintf(out, "instance %s  network %s  interval %ds\n", view.InstanceID, view.MyNetwork, view.UpdateInterval)
	fmt.Fprintln(out, wordwrap.WrapString(fmt.Sprintf("address: %s", view.MyAddress), 80))
	fmt.Fprintln(out)

	networks := make([]string, 0, len(view.RoutingTable))
	for n := range view.RoutingTable {
		networks = append(networks, n)
	}
	sort.Strings(networks)

	fmt.Fprintf(out, "%-20s %6s %-22s %s\n", "network", "cost", "next hop", "age")
	for _, n := range networks {
		r := view.RoutingTable[n]
		age := time.Since(time.Unix(r.LastUpdate, 0)).Round(time.Second)
		line := fmt.Sprintf("%-20s %6d %-22s %s", n, r.Cost, r.NextHop, age)
		if r.Cost >= 16 {
			dim.Fprintln(out, line)
		} else {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func colorableStdout() io.Writer {
	return colorable.NewColorableStdout()
}
