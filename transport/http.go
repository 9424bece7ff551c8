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
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mailru/easyjson"
	"github.com/rs/cors"
	"golang.org/x/net/netutil"

	"github.com/eth-classic/routerd/logger"
	"github.com/eth-classic/routerd/metrics"
	"github.com/eth-classic/routerd/router"
)

// maxConcurrentConns bounds inbound HTTP connections so a burst of
// /receive_update traffic can't starve the table's single-writer lock
// (spec §5's concurrency discipline extended to the transport seam).
const maxConcurrentConns = 256

// unknownSenderCacheSize bounds the log damper (SPEC_FULL §4.N).
const unknownSenderCacheSize = 256

// Server is the HTTP transport adapter of spec §4.G / §6.3.
type Server struct {
	router         *router.Router
	instanceID     string
	httpServer     *http.Server
	unknownSenders *lru.Cache
}

// NewServer builds a Server for r; the HTTP handler chain itself is
// assembled by Serve. instanceID is surfaced
// diagnostically in GET /routes (SPEC_FULL §4.O); it plays no part in any
// routing decision.
func NewServer(r *router.Router, instanceID string) *Server {
	cache, err := lru.New(unknownSenderCacheSize)
	if err != nil {
		// lru.New only errors on a non-positive size, which is a
		// programmer error here, not a runtime condition.
		panic(err)
	}
	return &Server{router: r, instanceID: instanceID, unknownSenders: cache}
}

// Serve binds addr and blocks serving HTTP until the listener is closed
// by Shutdown.
func (s *Server) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/receive_update", s.handleReceiveUpdate)
	mux.HandleFunc("/routes", s.handleRoutes)
	mux.HandleFunc("/debug/metrics", s.handleMetrics)

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(recoverMiddleware(mux))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	ln = netutil.LimitListener(ln, maxConcurrentConns)

	s.httpServer = &http.Server{Handler: handler}
	logger.Infof("transport: listening on %s", addr)
	err = s.httpServer.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server immediately: it closes the listener and all
// active connections without waiting for in-flight requests.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}

// recoverMiddleware is the "internal invariant violation" clause of spec
// §7 extended to the HTTP seam: an unexpected panic in a handler is
// logged and answered with 500, never crashes the process.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorf("transport: panic handling %s %s: %v", req.Method, req.URL.Path, rec)
				http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func (s *Server) handleReceiveUpdate(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var payload advertisementPayload
	if err := easyjson.Unmarshal(body, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if payload.SenderAddress == "" || payload.RoutingTable == nil {
		writeJSONError(w, http.StatusBadRequest, "missing sender_address or routing_table")
		return
	}

	sender := router.NeighborAddress(payload.SenderAddress)
	advertised := make(map[router.Network]router.AdvertisedRoute, len(payload.RoutingTable))
	for net, r := range payload.RoutingTable {
		advertised[router.Network(net)] = router.AdvertisedRoute{Cost: r.Cost, NextHop: router.NeighborAddress(r.NextHop)}
	}

	result := s.router.Ingest(sender, advertised)

	w.Header().Set("Content-Type", "application/json")
	if result == router.Ignored {
		metrics.AdvertisementsIgnored.Mark(1)
		s.logIgnoredSender(sender)
		json.NewEncoder(w).Encode(map[string]string{"status": "ignored"})
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// logIgnoredSender implements SPEC_FULL §4.N: log loudly only the first
// time a given unknown sender is seen within the damper's retention, to
// keep a misconfigured or spoofed peer from flooding the log.
func (s *Server) logIgnoredSender(sender router.NeighborAddress) {
	if _, seen := s.unknownSenders.Get(sender); seen {
		logger.V(logger.Detail).Warnf("transport: ignored advertisement from unknown sender %s", sender)
		return
	}
	s.unknownSenders.Add(sender, struct{}{})
	logger.Warnf("transport: ignored advertisement from unknown sender %s", sender)
}

func (s *Server) handleRoutes(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	snapshot := s.router.Table().Snapshot()
	wireTable := make(map[string]wireRouteWithAge, len(snapshot))
	for n, r := range snapshot {
		wireTable[string(n)] = wireRouteWithAge{Cost: r.Cost, NextHop: string(r.NextHop), LastUpdate: r.LastUpdate.Unix()}
	}

	neighbors := s.router.Neighbors()
	vizinhos := make(map[string]int, len(neighbors))
	for addr, cost := range neighbors {
		vizinhos[string(addr)] = cost
	}

	resp := routesResponse{
		MyAddress:      string(s.router.Self()),
		MyNetwork:      string(s.router.Table().OwnNetwork()),
		UpdateInterval: int(s.router.Interval() / time.Second),
		InstanceID:     s.instanceID,
		Vizinhos:       vizinhos,
		RoutingTable:   wireTable,
	}

	w.Header().Set("Content-Type", "application/json")
	buf, err := easyjson.Marshal(resp)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "could not encode routing table")
		return
	}
	w.Write(buf)
}

func (s *Server) handleMetrics(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := metrics.WriteOnce(w); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "could not encode metrics")
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
