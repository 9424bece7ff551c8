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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eth-classic/routerd/router"
)

func TestHTTPSenderSendPostsExpectedBody(t *testing.T) {
	var received advertisementPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/receive_update", req.URL.Path)
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.NoError(t, easyjson.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	sender := NewHTTPSender()
	to := router.NeighborAddress(strings.TrimPrefix(srv.URL, "http://"))
	table := map[router.Network]router.AdvertisedRoute{
		"10.0.0.0/24": {Cost: 1, NextHop: "127.0.0.1:5000"},
	}

	err := sender.Send(context.Background(), to, "127.0.0.1:5000", table)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", received.SenderAddress)
	assert.Equal(t, wireRoute{Cost: 1, NextHop: "127.0.0.1:5000"}, received.RoutingTable["10.0.0.0/24"])
}

func TestHTTPSenderSendReturnsErrorOnNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := NewHTTPSender()
	to := router.NeighborAddress(strings.TrimPrefix(srv.URL, "http://"))

	err := sender.Send(context.Background(), to, "127.0.0.1:5000", map[router.Network]router.AdvertisedRoute{})
	assert.Error(t, err)
}

func TestHTTPSenderSendReturnsErrorOnUnreachableHost(t *testing.T) {
	sender := NewHTTPSender()
	err := sender.Send(context.Background(), "127.0.0.1:1", "127.0.0.1:5000", map[router.Network]router.AdvertisedRoute{})
	assert.Error(t, err)
}
