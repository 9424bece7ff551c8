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
	"strconv"

	"github.com/eth-classic/routerd/logger"
)

// minAggregatePrefix is the summarizer's safety floor (spec §4.D.3.b): a
// common prefix shorter than this indicates the group spans address space
// well beyond what this node can plausibly route for.
const minAggregatePrefix = 16

type summaryMember struct {
	net  Network
	ip   uint32
	cost int
}

// Summarize produces the compressed outgoing view of snapshot described in
// spec §4.D. It is a pure function: it never touches the live Table.
func Summarize(snapshot map[Network]Route, own Network) map[Network]Route {
	groups := make(map[NeighborAddress][]summaryMember)

	for n, r := range snapshot {
		if n == own {
			continue
		}
		p, ok := tryParseNetwork(n)
		if !ok {
			// spec §7: "arithmetic on an unparseable stored key" — log
			// and skip the entry for this tick rather than crash.
			logger.V(logger.Detail).Warnf("summarize: skipping unparseable table key %q", string(n))
			continue
		}
		groups[r.NextHop] = append(groups[r.NextHop], summaryMember{net: n, ip: p.ip, cost: r.Cost})
	}

	out := make(map[Network]Route, len(groups)+1)

	for nextHop, members := range groups {
		if len(members) == 1 {
			m := members[0]
			out[m.net] = Route{Cost: m.cost, NextHop: nextHop}
			continue
		}

		minIP, maxIP := members[0].ip, members[0].ip
		maxCost := members[0].cost
		for _, m := range members[1:] {
			if m.ip < minIP {
				minIP = m.ip
			}
			if m.ip > maxIP {
				maxIP = m.ip
			}
			if m.cost > maxCost {
				maxCost = m.cost
			}
		}

		p := commonPrefixLength(minIP, maxIP)
		if p < minAggregatePrefix {
			emitUnaggregated(out, members, nextHop)
			continue
		}

		supernetInt := minIP & mask(p)
		valid := true
		for _, m := range members {
			if m.ip&mask(p) != supernetInt {
				valid = false
				break
			}
		}
		if !valid {
			emitUnaggregated(out, members, nextHop)
			continue
		}

		supernet := Network(ipToString(supernetInt) + "/" + strconv.Itoa(p))
		out[supernet] = Route{Cost: maxCost, NextHop: nextHop}
	}

	if r, ok := snapshot[own]; ok {
		out[own] = r
	}
	return out
}

func emitUnaggregated(out map[Network]Route, members []summaryMember, nextHop NeighborAddress) {
	for _, m := range members {
		out[m.net] = Route{Cost: m.cost, NextHop: nextHop}
	}
}
