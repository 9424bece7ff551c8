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

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mailru/easyjson"

	"github.com/eth-classic/routerd/router"
)

// ClientTimeout bounds a single outbound advertisement POST (spec §5's
// suggested 5s transport timeout).
const ClientTimeout = 5 * time.Second

// HTTPSender implements router.Sender by POSTing the projected table to a
// neighbor's /receive_update endpoint.
type HTTPSender struct {
	client *http.Client
}

// NewHTTPSender builds a sender with its own bounded-timeout client,
// independent of whatever deadline the caller's context carries.
func NewHTTPSender() *HTTPSender {
	return &HTTPSender{client: &http.Client{Timeout: ClientTimeout}}
}

// Send implements router.Sender.
func (s *HTTPSender) Send(ctx context.Context, to, from router.NeighborAddress, table map[router.Network]router.AdvertisedRoute) error {
	payload := advertisementPayload{
		SenderAddress: string(from),
		RoutingTable:  make(map[string]wireRoute, len(table)),
	}
	for n, r := range table {
		payload.RoutingTable[string(n)] = wireRoute{Cost: r.Cost, NextHop: string(r.NextHop)}
	}

	body, err := easyjson.Marshal(payload)
	if err != nil {
		return fmt.Errorf("transport: encode advertisement for %s: %w", to, err)
	}

	url := fmt.Sprintf("http://%s/receive_update", to)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("transport: build request for %s: %w", to, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("transport: send to %s: %w", to, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transport: %s responded with status %d", to, resp.StatusCode)
	}
	return nil
}
