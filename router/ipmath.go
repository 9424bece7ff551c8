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
	"fmt"
	"math/bits"
	"net/netip"
)

// Network is the canonical textual form of an IPv4 CIDR, "a.b.c.d/p", with
// host bits cleared. It is the routing table's key type.
type Network string

// parsedNetwork is the 32-bit-integer working form used by arithmetic.
type parsedNetwork struct {
	ip     uint32
	prefix int
}

// parseNetwork parses "a.b.c.d/p" into its 32-bit address and prefix
// length, failing if the prefix is out of [0,32] or the address isn't a
// dotted-quad IPv4 literal.
func parseNetwork(s string) (parsedNetwork, error) {
	pfx, err := netip.ParsePrefix(s)
	if err != nil {
		return parsedNetwork{}, fmt.Errorf("router: invalid network %q: %w", s, err)
	}
	addr := pfx.Addr()
	if !addr.Is4() {
		return parsedNetwork{}, fmt.Errorf("router: %q is not IPv4", s)
	}
	prefix := pfx.Bits()
	if prefix < 0 || prefix > 32 {
		return parsedNetwork{}, fmt.Errorf("router: prefix out of range in %q", s)
	}
	b := addr.As4()
	ip := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return parsedNetwork{ip: ip, prefix: prefix}, nil
}

// mask returns the top prefix bits set, e.g. mask(24) == 0xFFFFFF00.
func mask(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	if prefix >= 32 {
		return 0xFFFFFFFF
	}
	return ^uint32(0) << uint(32-prefix)
}

func ipToString(ip uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(ip>>24), byte(ip>>16), byte(ip>>8), byte(ip))
}

// canonicalizeNetwork clears the host bits of s and returns the canonical
// "a.b.c.d/p" form used as a RoutingTable key.
func canonicalizeNetwork(s string) (Network, error) {
	p, err := parseNetwork(s)
	if err != nil {
		return "", err
	}
	netInt := p.ip & mask(p.prefix)
	return Network(fmt.Sprintf("%s/%d", ipToString(netInt), p.prefix)), nil
}

// MustCanonicalize is canonicalizeNetwork for call sites that already know
// the input is well-formed (e.g. compile-time constants in tests).
func MustCanonicalize(s string) Network {
	n, err := canonicalizeNetwork(s)
	if err != nil {
		panic(err)
	}
	return n
}

// commonPrefixLength returns, in [0,32], the count of leading identical
// bits of a and b (equivalently, of bits.LeadingZeros32(a^b) capped at 32).
func commonPrefixLength(a, b uint32) int {
	if a == b {
		return 32
	}
	return bits.LeadingZeros32(a ^ b)
}

// tryParseNetwork reports whether n parses as a CIDR, without erroring.
// Used by the summarizer to skip table keys that aren't destination
// networks (the bootstrap neighbor-address entries seeded in table.go).
func tryParseNetwork(n Network) (parsedNetwork, bool) {
	p, err := parseNetwork(string(n))
	if err != nil {
		return parsedNetwork{}, false
	}
	return p, true
}
