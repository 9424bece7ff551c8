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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"gopkg.in/urfave/cli.v1"

	"github.com/eth-classic/routerd/config"
	"github.com/eth-classic/routerd/identity"
	"github.com/eth-classic/routerd/logger"
	"github.com/eth-classic/routerd/router"
	"github.com/eth-classic/routerd/transport"
)

var serveCommand = cli.Command{
	Action: serve,
	Name:   "serve",
	Usage:  "Run the routing daemon",
	Flags: []cli.Flag{
		PortFlag,
		NeighborsFileFlag,
		NetworkFlag,
		IntervalFlag,
		VerbosityFlag,
	},
}

func serve(ctx *cli.Context) error {
	logger.SetVerbosity(logger.Level(ctx.Int(VerbosityFlag.Name)))

	network := ctx.String(NetworkFlag.Name)
	if network == "" {
		logger.Fatalf("serve: -%s is required", NetworkFlag.Name)
	}

	file := ctx.String("file")
	if file == "" {
		logger.Fatalf("serve: -f/--file is required")
	}

	neighbors, err := config.LoadNeighbors(afero.NewOsFs(), file)
	if err != nil {
		logger.Fatalf("serve: loading neighbors: %v", err)
	}

	port := ctx.Int("port")
	if port <= 0 || port > 65535 {
		logger.Fatalf("serve: -p/--port: %d is not a valid TCP port", port)
	}

	// The CLI surface only takes a port (spec §6.2); every neighbor in the
	// example deployments addresses this node as "127.0.0.1:<port>", so
	// that's the identity advertised to neighbors, while the listener
	// itself binds all interfaces to accept updates from non-loopback
	// peers too.
	self := router.NeighborAddress(fmt.Sprintf("127.0.0.1:%d", port))
	bindAddr := fmt.Sprintf(":%d", port)

	r := router.New(router.Config{
		Self:       self,
		OwnNetwork: router.Network(network),
		Neighbors:  neighbors,
		Interval:   ctx.Duration(IntervalFlag.Name),
		Sender:     transport.NewHTTPSender(),
	})
	r.Start()
	defer r.Stop()

	watcher := config.WatchFile(file)
	defer watcher.Stop()

	srv := transport.NewServer(r, identity.Resolve())
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(bindAddr) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case s := <-sig:
		logger.Infof("serve: received %s, shutting down", s)
		srv.Shutdown()
		<-serveErr
	}
	return nil
}
