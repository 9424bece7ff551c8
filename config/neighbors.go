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

// Package config reads the neighbor CSV file (spec §6.1) through an
// afero.Fs seam, mirroring node/config.go's use of afero for its
// datadir access — it lets the loader be exercised against an in-memory
// filesystem in tests instead of touching disk.
package config

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/eth-classic/routerd/router"
)

const (
	headerNeighbor = "vizinho"
	headerCost     = "custo"
)

// LoadNeighbors parses the CSV at path via fs, requiring the header
// "vizinho,custo" and one "host:port,cost" row per neighbor (spec §6.1).
// Cost must be an integer in [1, Infinity-1]. Duplicate neighbor
// addresses: the last row wins — a documented choice, not a rejection,
// since an operator appending a corrected row to the bottom of the file
// is a more natural edit than having to delete the earlier one.
func LoadNeighbors(fs afero.Fs, path string) (router.NeighborConfig, error) {
	blob, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(blob))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("config: reading header of %s: %w", path, err)
	}
	if err := validateHeader(header); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	neighbors := make(router.NeighborConfig)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("config: %s: expected 2 columns, got %d", path, len(record))
		}

		addr := strings.TrimSpace(record[0])
		if addr == "" {
			return nil, fmt.Errorf("config: %s: empty neighbor address", path)
		}
		cost, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("config: %s: neighbor %s: cost %q is not an integer", path, addr, record[1])
		}
		if cost < 1 || cost >= router.Infinity {
			return nil, fmt.Errorf("config: %s: neighbor %s: cost %d out of range [1,%d)", path, addr, cost, router.Infinity)
		}
		neighbors[router.NeighborAddress(addr)] = cost
	}

	if len(neighbors) == 0 {
		return nil, fmt.Errorf("config: %s: no neighbors defined", path)
	}
	return neighbors, nil
}

func validateHeader(header []string) error {
	if len(header) != 2 {
		return fmt.Errorf("expected header %q, got %d columns", headerNeighbor+","+headerCost, len(header))
	}
	a, b := strings.TrimSpace(header[0]), strings.TrimSpace(header[1])
	if !strings.EqualFold(a, headerNeighbor) || !strings.EqualFold(b, headerCost) {
		return fmt.Errorf("expected header %q, got %q,%q", headerNeighbor+","+headerCost, a, b)
	}
	return nil
}
