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

package router

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/eth-classic/routerd/logger"
	"github.com/eth-classic/routerd/metrics"
)

// advertiserLoop schedules outbound advertisement ticks and coordinates
// shutdown, in the shape of the teacher's p2p/discover.Table.refreshLoop:
// a ticker, a select over the tick and the stop request, and a done
// channel closed on exit.
func (r *Router) advertiserLoop() {
	defer close(r.doneAdvertiser)

	timer := time.NewTicker(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			r.advertiseTick()
		case <-r.stopAdvertiser:
			return
		}
	}
}

// advertiseTick implements spec §4.E: snapshot + summarize once under the
// lock's protection (Snapshot already copies out), then split-horizon
// project per neighbor and hand off to the transport — entirely outside
// any lock, per spec §5.
func (r *Router) advertiseTick() {
	snapshot := r.table.Snapshot()
	logger.V(logger.Debug).Infof("advertiser: table snapshot:\n%s", spew.Sdump(snapshot))

	summarized := Summarize(snapshot, r.table.OwnNetwork())

	for neighbor := range r.neighbors {
		projection := make(map[Network]AdvertisedRoute, len(summarized))
		for n, route := range summarized {
			if route.NextHop == neighbor {
				continue // split horizon (spec §4.E.2.a)
			}
			projection[n] = AdvertisedRoute{Cost: route.Cost, NextHop: route.NextHop}
		}

		if r.sender == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := r.sender.Send(ctx, neighbor, r.self, projection)
		cancel()
		if err != nil {
			metrics.AdvertisementsFailed.Mark(1)
			logger.Warnf("advertiser: send to %s failed: %v", neighbor, err)
			continue
		}
		metrics.AdvertisementsSent.Mark(1)
	}
}
