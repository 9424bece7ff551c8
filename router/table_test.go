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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewTableSeedsOwnAndNeighbors(t *testing.T) {
	ts := time.Unix(1000, 0)
	own := MustCanonicalize("10.0.0.0/24")
	neighbors := NeighborConfig{"127.0.0.1:5001": 1, "127.0.0.1:5002": 3}

	tbl := newTable(own, "127.0.0.1:5000", neighbors, fixedClock(ts))

	self, ok := tbl.Get(own)
	require.True(t, ok)
	assert.Equal(t, Route{Cost: 0, NextHop: "127.0.0.1:5000", LastUpdate: ts}, self)

	n1, ok := tbl.Get(Network("127.0.0.1:5001"))
	require.True(t, ok)
	assert.Equal(t, 1, n1.Cost)
	assert.Equal(t, NeighborAddress("127.0.0.1:5001"), n1.NextHop)

	assert.Len(t, tbl.Snapshot(), 3)
}

func TestSnapshotIsADeepCopy(t *testing.T) {
	own := MustCanonicalize("10.0.0.0/24")
	tbl := newTable(own, "self", nil, fixedClock(time.Unix(0, 0)))

	snap := tbl.Snapshot()
	snap[own] = Route{Cost: 99}

	r, _ := tbl.Get(own)
	assert.Equal(t, 0, r.Cost, "mutating a snapshot must not affect the live table")
}

func TestSetCostClampsAndSkipsOwnNetwork(t *testing.T) {
	own := MustCanonicalize("10.0.0.0/24")
	tbl := newTable(own, "self", NeighborConfig{"n": 1}, fixedClock(time.Unix(0, 0)))

	tbl.SetCost(own, Infinity+5)
	r, _ := tbl.Get(own)
	assert.Equal(t, 0, r.Cost, "OwnNetwork cost must never change")

	tbl.SetCost(Network("n"), Infinity+100)
	r, _ = tbl.Get(Network("n"))
	assert.Equal(t, Infinity, r.Cost, "cost must clamp to Infinity, never exceed it")
}

func TestTouchRefreshesLastUpdateOnly(t *testing.T) {
	t0 := time.Unix(0, 0)
	t1 := time.Unix(100, 0)
	own := MustCanonicalize("10.0.0.0/24")
	tbl := newTable(own, "self", NeighborConfig{"n": 2}, fixedClock(t0))

	tbl.nowFunc = fixedClock(t1)
	tbl.Touch(Network("n"))

	r, _ := tbl.Get(Network("n"))
	assert.Equal(t, 2, r.Cost)
	assert.Equal(t, t1, r.LastUpdate)
}

func TestTouchOnAbsentKeyIsNoop(t *testing.T) {
	own := MustCanonicalize("10.0.0.0/24")
	tbl := newTable(own, "self", nil, fixedClock(time.Unix(0, 0)))
	tbl.Touch(Network("ghost"))
	_, ok := tbl.Get(Network("ghost"))
	assert.False(t, ok)
}
