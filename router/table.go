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
	"sync"
	"time"
)

// Table is the concurrency-safe in-memory RoutingTable (spec §3, §4.B).
// All mutation and whole-table reads are serialized under mu, mirroring
// the single-mutex discipline of the teacher's p2p/discover.Table.
type Table struct {
	mu      sync.Mutex
	entries map[Network]Route

	own     Network
	self    NeighborAddress
	nowFunc func() time.Time
}

// newTable seeds the table per spec §3's Lifecycle: the own-network
// self-route plus one entry per configured neighbor, keyed by the
// neighbor's address itself (matching the original implementation — see
// DESIGN.md on the non-CIDR bootstrap key). Those bootstrap entries are
// orphaned once the neighbor's real advertised network is learned via
// relaxation; the summarizer (router/summarize.go) skips any table key
// that doesn't parse as a CIDR, per spec §7's "arithmetic on an
// unparseable stored key" clause.
func newTable(own Network, self NeighborAddress, neighbors NeighborConfig, now func() time.Time) *Table {
	if now == nil {
		now = time.Now
	}
	t := &Table{
		entries: make(map[Network]Route, len(neighbors)+1),
		own:     own,
		self:    self,
		nowFunc: now,
	}
	ts := now()
	t.entries[own] = Route{Cost: 0, NextHop: self, LastUpdate: ts}
	for addr, cost := range neighbors {
		t.entries[Network(addr)] = Route{Cost: clampCost(cost), NextHop: addr, LastUpdate: ts}
	}
	return t
}

// Get returns a value snapshot of a single route, or false if absent.
func (t *Table) Get(n Network) (Route, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.entries[n]
	return r, ok
}

// Snapshot returns a deep copy of the entire table.
func (t *Table) Snapshot() map[Network]Route {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[Network]Route, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// upsertLocked assigns entries[n] = r with the clamp-to-Infinity invariant.
// Caller must hold t.mu.
func (t *Table) upsertLocked(n Network, r Route) {
	r.Cost = clampCost(r.Cost)
	t.entries[n] = r
}

// SetCost targets a cost-only mutation (used by the expiry scanner); it
// refuses to touch OwnNetwork and does not update LastUpdate (spec §4.F).
func (t *Table) SetCost(n Network, cost int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n == t.own {
		return
	}
	r, ok := t.entries[n]
	if !ok {
		return
	}
	r.Cost = clampCost(cost)
	t.entries[n] = r
}

// Touch refreshes LastUpdate on an existing entry without changing cost
// or next hop.
func (t *Table) Touch(n Network) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.entries[n]
	if !ok {
		return
	}
	r.LastUpdate = t.nowFunc()
	t.entries[n] = r
}

// OwnNetwork returns the node's own served CIDR.
func (t *Table) OwnNetwork() Network { return t.own }
