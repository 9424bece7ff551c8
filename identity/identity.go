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

// Package identity derives a stable, opaque identifier for this daemon
// instance. It is purely diagnostic: it is surfaced on GET /routes so an
// operator can correlate a node's output across restarts. It is derived
// from the host, so every routerd process on the same host reports the
// same value. Nothing in the routing engine consults it.
package identity

import (
	"os"

	"github.com/denisbrodbeck/machineid"
)

// appID scopes the protected machine ID so it doesn't collide with
// identifiers other machineid callers on the same host might derive.
const appID = "routerd"

// Resolve returns an identifier of at most 8 characters derived from the
// host's machine ID, falling back to the hostname if the platform has none
// available (e.g. a sandboxed container missing /etc/machine-id). A
// hostname shorter than 8 characters is returned whole.
func Resolve() string {
	mid, err := machineid.ProtectedID(appID)
	if err != nil {
		hostname, hostErr := os.Hostname()
		if hostErr != nil {
			hostname = "unknown"
		}
		mid = hostname
	}
	if len(mid) > 8 {
		mid = mid[:8]
	}
	return mid
}
