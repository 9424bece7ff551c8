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

// Package router is the routing engine: the table and its invariants, the
// advertisement-ingestion relaxation, the periodic advertiser with split
// horizon, the staleness/expiry timer, and the summarizer. It has no
// knowledge of HTTP; transport is injected through the Sender interface
// (spec §4.G design note: pass the instance explicitly, no singletons).
package router

import (
	"context"
	"time"
)

const (
	// DefaultInterval is the advertiser period (spec §6.2).
	DefaultInterval = 5 * time.Second
	// RouteTimeout is the fixed expiry threshold (spec §4.F).
	RouteTimeout = 90 * time.Second
	// ExpiryScanInterval is the fixed expiry-scanner cadence (spec §4.F).
	ExpiryScanInterval = 5 * time.Second
)

// Sender is the transport seam the advertiser hands outbound projections
// to (spec §1: "the core requires only that ... it can POST a message to
// a neighbor address"). Implementations must apply their own bounded
// timeout (spec §5 suggests 5s) and must not block the caller past it.
type Sender interface {
	Send(ctx context.Context, to NeighborAddress, from NeighborAddress, table map[Network]AdvertisedRoute) error
}

// Router wires the table to the periodic advertiser and expiry scanner.
type Router struct {
	table     *Table
	neighbors NeighborConfig
	self      NeighborAddress
	sender    Sender
	interval  time.Duration

	stopAdvertiser chan struct{}
	stopExpiry     chan struct{}
	doneAdvertiser chan struct{}
	doneExpiry     chan struct{}

	now func() time.Time
}

// Config bundles a Router's startup parameters (spec §6.2).
type Config struct {
	Self        NeighborAddress
	OwnNetwork  Network
	Neighbors   NeighborConfig
	Interval    time.Duration
	Sender      Sender
	nowOverride func() time.Time // test seam only
}

// New constructs a Router with its table seeded per spec §3's Lifecycle.
func New(cfg Config) *Router {
	now := cfg.nowOverride
	if now == nil {
		now = time.Now
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Router{
		table:          newTable(cfg.OwnNetwork, cfg.Self, cfg.Neighbors, now),
		neighbors:      cfg.Neighbors,
		self:           cfg.Self,
		sender:         cfg.Sender,
		interval:       interval,
		stopAdvertiser: make(chan struct{}),
		stopExpiry:     make(chan struct{}),
		doneAdvertiser: make(chan struct{}),
		doneExpiry:     make(chan struct{}),
		now:            now,
	}
}

// Table exposes the routing table for relaxation (the transport adapter's
// /receive_update handler) and introspection (its /routes handler).
func (r *Router) Table() *Table { return r.table }

// Neighbors returns the immutable NeighborConfig established at startup.
func (r *Router) Neighbors() NeighborConfig { return r.neighbors }

// Self returns this node's own transport address.
func (r *Router) Self() NeighborAddress { return r.self }

// Interval returns the configured advertiser period.
func (r *Router) Interval() time.Duration { return r.interval }

// Ingest applies an inbound advertisement; see Relax.
func (r *Router) Ingest(sender NeighborAddress, advertised map[Network]AdvertisedRoute) IngestResult {
	return Relax(r.table, r.neighbors, sender, advertised, r.now)
}

// Start launches the advertiser and expiry-scanner background loops.
func (r *Router) Start() {
	go r.advertiserLoop()
	go r.expiryLoop()
}

// Stop signals both loops and blocks until they have observed it (spec
// §5: "both periodic tasks must observe a stop signal within at most one
// interval; in-flight sends may be abandoned").
func (r *Router) Stop() {
	close(r.stopAdvertiser)
	close(r.stopExpiry)
	<-r.doneAdvertiser
	<-r.doneExpiry
}
