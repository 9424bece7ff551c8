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

// Package metrics centralizes the registration of the daemon's counters.
package metrics

import (
	"io"

	"github.com/rcrowley/go-metrics"
)

// reg is the metrics destination, mirroring the teacher's package-level
// registry plus package-level named meters/counters.
var reg = metrics.NewRegistry()

var (
	// AdvertisementsSent counts successful outbound advertiser deliveries
	// (spec §4.E).
	AdvertisementsSent = metrics.NewRegisteredMeter("advertisements/sent", reg)
	// AdvertisementsFailed counts outbound transport failures (spec §7,
	// "logged, counted if the implementer chooses").
	AdvertisementsFailed = metrics.NewRegisteredMeter("advertisements/failed", reg)
	// AdvertisementsIgnored counts inbound advertisements from unknown
	// senders (spec §4.C rule 1).
	AdvertisementsIgnored = metrics.NewRegisteredMeter("advertisements/ignored", reg)
	// RoutesExpired counts expiry-scanner demotions to Infinity (spec
	// §4.F).
	RoutesExpired = metrics.NewRegisteredMeter("routes/expired", reg)
)

// WriteOnce dumps the registry as JSON to w, in the teacher's
// metrics.Collect idiom but invoked on demand (by the /debug/metrics
// handler) rather than on a fixed collection tick. go-metrics'
// WriteJSONOnce reports no error, so the result is always nil.
func WriteOnce(w io.Writer) error {
	metrics.WriteJSONOnce(reg, w)
	return nil
}
