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

// Package transport is the HTTP seam over router.Router: it decodes
// inbound advertisements for Router.Ingest and implements router.Sender
// by POSTing outbound advertisements (spec §4.G, §6.3).
//
// The wire types below implement easyjson.Marshaler/Unmarshaler by hand.
// go.mod already carries mailru/easyjson from the teacher; ordinarily its
// code is codegen'd, but this project never invokes the Go toolchain (let
// alone `easyjson` itself), so the small, stable wire shapes are written
// directly against jwriter/jlexer instead.
package transport

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// wireRoute is one entry of the "routing_table" object on the wire: just
// cost and next_hop, never last_update (spec §6.3's POST body shape).
type wireRoute struct {
	Cost    int
	NextHop string
}

func (v wireRoute) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"cost":`)
	w.Int(v.Cost)
	w.RawString(`,"next_hop":`)
	w.String(v.NextHop)
	w.RawByte('}')
}

func (v *wireRoute) UnmarshalEasyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "cost":
			v.Cost = l.Int()
		case "next_hop":
			v.NextHop = l.String()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

// advertisementPayload is the POST /receive_update request body.
type advertisementPayload struct {
	SenderAddress string
	RoutingTable  map[string]wireRoute
}

func (v advertisementPayload) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"sender_address":`)
	w.String(v.SenderAddress)
	w.RawString(`,"routing_table":`)
	if v.RoutingTable == nil {
		w.RawString("null")
	} else {
		w.RawByte('{')
		first := true
		for k, r := range v.RoutingTable {
			if !first {
				w.RawByte(',')
			}
			first = false
			w.String(k)
			w.RawByte(':')
			r.MarshalEasyJSON(w)
		}
		w.RawByte('}')
	}
	w.RawByte('}')
}

func (v *advertisementPayload) UnmarshalEasyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "sender_address":
			v.SenderAddress = l.String()
		case "routing_table":
			if l.IsNull() {
				l.Skip()
				v.RoutingTable = nil
			} else {
				v.RoutingTable = make(map[string]wireRoute)
				l.Delim('{')
				for !l.IsDelim('}') {
					k := l.UnsafeFieldName(false)
					l.WantColon()
					var r wireRoute
					r.UnmarshalEasyJSON(l)
					v.RoutingTable[k] = r
					l.WantComma()
				}
				l.Delim('}')
			}
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

// routesResponse is the GET /routes body (spec §6.3).
type routesResponse struct {
	MyAddress      string
	MyNetwork      string
	UpdateInterval int
	InstanceID     string
	Vizinhos       map[string]int
	RoutingTable   map[string]wireRouteWithAge
}

type wireRouteWithAge struct {
	Cost       int
	NextHop    string
	LastUpdate int64 // unix seconds
}

func (v wireRouteWithAge) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"cost":`)
	w.Int(v.Cost)
	w.RawString(`,"next_hop":`)
	w.String(v.NextHop)
	w.RawString(`,"last_update":`)
	w.Int64(v.LastUpdate)
	w.RawByte('}')
}

func (v routesResponse) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"my_address":`)
	w.String(v.MyAddress)
	w.RawString(`,"my_network":`)
	w.String(v.MyNetwork)
	w.RawString(`,"update_interval":`)
	w.Int(v.UpdateInterval)
	w.RawString(`,"instance_id":`)
	w.String(v.InstanceID)
	w.RawString(`,"vizinhos":`)
	w.RawByte('{')
	first := true
	for k, c := range v.Vizinhos {
		if !first {
			w.RawByte(',')
		}
		first = false
		w.String(k)
		w.RawByte(':')
		w.Int(c)
	}
	w.RawByte('}')
	w.RawString(`,"routing_table":`)
	w.RawByte('{')
	first = true
	for k, r := range v.RoutingTable {
		if !first {
			w.RawByte(',')
		}
		first = false
		w.String(k)
		w.RawByte(':')
		r.MarshalEasyJSON(w)
	}
	w.RawByte('}')
	w.RawByte('}')
}
