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
	"time"

	"github.com/eth-classic/routerd/metrics"
)

// expiryLoop runs the staleness scanner on a fixed cadence (spec §4.F),
// shaped the same way as advertiserLoop.
func (r *Router) expiryLoop() {
	defer close(r.doneExpiry)

	timer := time.NewTicker(ExpiryScanInterval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			r.expiryTick()
		case <-r.stopExpiry:
			return
		}
	}
}

// expiryTick demotes routes whose last-update age exceeds RouteTimeout to
// Infinity (spec §4.F). OwnNetwork is never scanned (invariant 2).
func (r *Router) expiryTick() {
	now := r.now()
	snapshot := r.table.Snapshot()
	own := r.table.OwnNetwork()

	for n, route := range snapshot {
		if n == own {
			continue
		}
		if route.Cost == Infinity {
			continue
		}
		if now.Sub(route.LastUpdate) > RouteTimeout {
			r.table.SetCost(n, Infinity)
			metrics.RoutesExpired.Mark(1)
		}
	}
}
