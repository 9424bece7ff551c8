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

var timeNow = time.Now

// IngestResult reports the outcome of Relax, for callers (the transport
// adapter) that need to answer the wire protocol's "success"/"ignored"
// distinction (spec §6.3).
type IngestResult int

const (
	// Applied means sender was a known neighbor and the advertisement was
	// processed (possibly with no resulting change).
	Applied IngestResult = iota
	// Ignored means sender was not in NeighborConfig; the table was not
	// touched (spec §4.C rule 1).
	Ignored
)

// Relax applies an inbound advertisement from sender to the table,
// implementing the Bellman-Ford relaxation of spec §4.C.
func Relax(t *Table, neighbors NeighborConfig, sender NeighborAddress, advertised map[Network]AdvertisedRoute, now func() time.Time) IngestResult {
	d, known := neighbors[sender]
	if !known {
		return Ignored
	}
	if now == nil {
		now = timeNow
	}
	ts := now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for n, adv := range advertised {
		if n == t.own {
			continue // invariant 2: OwnNetwork is never overwritten
		}
		cPrime := clampCost(d + adv.Cost)
		cur, exists := t.entries[n]

		switch {
		case !exists:
			// Case A — unknown network.
			if cPrime < Infinity {
				t.upsertLocked(n, Route{Cost: cPrime, NextHop: sender, LastUpdate: ts})
			}
		case cPrime < cur.Cost:
			// Case B — strictly better, from any neighbor.
			t.upsertLocked(n, Route{Cost: cPrime, NextHop: sender, LastUpdate: ts})
		case cur.NextHop == sender && cPrime != cur.Cost:
			// Case C — incumbent next-hop revision (keeps next hop,
			// including worsening all the way to Infinity: poisoning).
			cur.Cost = cPrime
			cur.LastUpdate = ts
			t.upsertLocked(n, cur)
		default:
			// No change; LastUpdate of untouched entries is not altered.
		}
	}
	return Applied
}
