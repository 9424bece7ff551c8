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

import "time"

// Infinity is the classic RIP unreachable-cost marker (spec §3).
const Infinity = 16

// NeighborAddress identifies a direct neighbor and doubles as the HTTP
// transport target for it ("host:port").
type NeighborAddress string

// Route is one entry of a RoutingTable.
type Route struct {
	Cost       int
	NextHop    NeighborAddress
	LastUpdate time.Time
}

// clampCost enforces invariant 4: cost is never stored above Infinity.
func clampCost(c int) int {
	if c > Infinity {
		return Infinity
	}
	if c < 0 {
		return 0
	}
	return c
}

// NeighborConfig is the immutable, startup-established cost-to-neighbor
// table (spec §3). Costs are in [1, Infinity-1].
type NeighborConfig map[NeighborAddress]int

// AdvertisedRoute is one entry of an inbound advertisement (spec §6.3).
type AdvertisedRoute struct {
	Cost    int
	NextHop NeighborAddress
}
