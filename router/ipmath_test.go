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

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type IPMathSuite struct{}

var _ = Suite(&IPMathSuite{})

func (s *IPMathSuite) TestParseNetwork(c *C) {
	p, err := parseNetwork("10.0.0.0/24")
	c.Assert(err, IsNil)
	c.Assert(p.prefix, Equals, 24)
	c.Assert(p.ip, Equals, uint32(10)<<24)
}

func (s *IPMathSuite) TestParseNetworkRejectsBadPrefix(c *C) {
	_, err := parseNetwork("10.0.0.0/33")
	c.Assert(err, NotNil)
}

func (s *IPMathSuite) TestParseNetworkRejectsBadOctet(c *C) {
	_, err := parseNetwork("10.0.0.256/24")
	c.Assert(err, NotNil)
}

func (s *IPMathSuite) TestMask(c *C) {
	c.Assert(mask(0), Equals, uint32(0))
	c.Assert(mask(24), Equals, uint32(0xFFFFFF00))
	c.Assert(mask(32), Equals, uint32(0xFFFFFFFF))
}

func (s *IPMathSuite) TestCanonicalize(c *C) {
	n, err := canonicalizeNetwork("10.0.0.5/24")
	c.Assert(err, IsNil)
	c.Assert(n, Equals, Network("10.0.0.0/24"))
}

func (s *IPMathSuite) TestCommonPrefixLength(c *C) {
	// 10.1.0.0 vs 10.1.3.0 -> S5 of spec.md: common prefix 22.
	a, err := parseNetwork("10.1.0.0/24")
	c.Assert(err, IsNil)
	b, err := parseNetwork("10.1.3.0/24")
	c.Assert(err, IsNil)
	c.Assert(commonPrefixLength(a.ip, b.ip), Equals, 22)
}

func (s *IPMathSuite) TestCommonPrefixLengthIdentical(c *C) {
	c.Assert(commonPrefixLength(42, 42), Equals, 32)
}

func (s *IPMathSuite) TestCommonPrefixLengthFloor(c *C) {
	// S6 of spec.md: 10.0.0.0 vs 192.168.0.0 share 0 leading bits.
	a, err := parseNetwork("10.0.0.0/24")
	c.Assert(err, IsNil)
	b, err := parseNetwork("192.168.0.0/24")
	c.Assert(err, IsNil)
	c.Assert(commonPrefixLength(a.ip, b.ip), Equals, 0)
}

func (s *IPMathSuite) TestTryParseNetworkRejectsHostPort(c *C) {
	_, ok := tryParseNetwork(Network("127.0.0.1:5001"))
	c.Assert(ok, Equals, false)
}
