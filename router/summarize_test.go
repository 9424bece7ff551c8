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

	"github.com/stretchr/testify/assert"
)

func TestSummarizeHappyPath(t *testing.T) {
	own := MustCanonicalize("192.0.2.0/24")
	snapshot := map[Network]Route{
		own: {Cost: 0, NextHop: "self"},
		MustCanonicalize("10.1.0.0/24"): {Cost: 3, NextHop: "H"},
		MustCanonicalize("10.1.1.0/24"): {Cost: 4, NextHop: "H"},
		MustCanonicalize("10.1.2.0/24"): {Cost: 5, NextHop: "H"},
		MustCanonicalize("10.1.3.0/24"): {Cost: 4, NextHop: "H"},
	}

	out := Summarize(snapshot, own)

	assert.Len(t, out, 2) // supernet + own
	supernet, ok := out[MustCanonicalize("10.1.0.0/22")]
	assert.True(t, ok)
	assert.Equal(t, 5, supernet.Cost, "must use the max cost of the group, never underestimate")
	assert.Equal(t, NeighborAddress("H"), supernet.NextHop)
}

func TestSummarizeSafetyFloor(t *testing.T) {
	own := MustCanonicalize("192.0.2.0/24")
	snapshot := map[Network]Route{
		own: {Cost: 0, NextHop: "self"},
		MustCanonicalize("10.0.0.0/24"):    {Cost: 1, NextHop: "H"},
		MustCanonicalize("192.168.0.0/24"): {Cost: 1, NextHop: "H"},
	}

	out := Summarize(snapshot, own)

	assert.Len(t, out, 3, "common prefix below 16 must emit both routes unaggregated")
	_, ok := out[MustCanonicalize("10.0.0.0/24")]
	assert.True(t, ok)
	_, ok = out[MustCanonicalize("192.168.0.0/24")]
	assert.True(t, ok)
}

func TestSummarizeSingleRouteGroupPassesThrough(t *testing.T) {
	own := MustCanonicalize("192.0.2.0/24")
	dest := MustCanonicalize("10.9.0.0/24")
	snapshot := map[Network]Route{
		own:  {Cost: 0, NextHop: "self"},
		dest: {Cost: 4, NextHop: "H"},
	}

	out := Summarize(snapshot, own)

	assert.Equal(t, Route{Cost: 4, NextHop: "H"}, out[dest])
}

func TestSummarizeAlwaysReinsertsOwnNetwork(t *testing.T) {
	own := MustCanonicalize("192.0.2.0/24")
	snapshot := map[Network]Route{own: {Cost: 0, NextHop: "self"}}

	out := Summarize(snapshot, own)

	r, ok := out[own]
	assert.True(t, ok)
	assert.Equal(t, 0, r.Cost)
}

func TestSummarizeSkipsUnparseableKeys(t *testing.T) {
	own := MustCanonicalize("192.0.2.0/24")
	snapshot := map[Network]Route{
		own:                   {Cost: 0, NextHop: "self"},
		Network("127.0.0.1:5001"): {Cost: 1, NextHop: "127.0.0.1:5001"},
	}

	out := Summarize(snapshot, own)

	assert.Len(t, out, 1, "the unparseable bootstrap key must be dropped, not crash")
}

func TestSummarizeNeverUnderestimatesGroupCost(t *testing.T) {
	own := MustCanonicalize("192.0.2.0/24")
	snapshot := map[Network]Route{
		own: {Cost: 0, NextHop: "self"},
		MustCanonicalize("172.16.0.0/24"): {Cost: 2, NextHop: "H"},
		MustCanonicalize("172.16.1.0/24"): {Cost: 9, NextHop: "H"},
	}

	out := Summarize(snapshot, own)

	for net, route := range out {
		if net == own {
			continue
		}
		assert.GreaterOrEqual(t, route.Cost, 9)
	}
}
