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

package config

import (
	"time"

	"github.com/rjeczalik/notify"

	"github.com/eth-classic/routerd/logger"
)

// Watcher observes the neighbor CSV file and, on change, logs that a
// restart is required to apply it. NeighborConfig is immutable once a
// Router is constructed (spec §3), so the watcher never reloads state —
// it only saves an operator from wondering why an edited file had no
// effect. Shaped after accounts.watcher (accounts/watch.go): a debounced
// notify.Watch loop with an explicit stop channel.
type Watcher struct {
	path string
	ev   chan notify.EventInfo
	quit chan struct{}
	done chan struct{}
}

// WatchFile starts watching path in the background. Callers must call
// Stop to release the notify subscription.
func WatchFile(path string) *Watcher {
	w := &Watcher{
		path: path,
		ev:   make(chan notify.EventInfo, 10),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go w.loop()
	return w
}

// Stop ends the watch loop and blocks until it has exited.
func (w *Watcher) Stop() {
	close(w.quit)
	<-w.done
}

func (w *Watcher) loop() {
	defer close(w.done)

	if err := notify.Watch(w.path, w.ev, notify.All); err != nil {
		logger.V(logger.Detail).Warnf("config: can't watch %s: %v", w.path, err)
		return
	}
	defer notify.Stop(w.ev)
	logger.V(logger.Detail).Infof("config: watching %s for changes", w.path)

	const debounceDuration = 500 * time.Millisecond
	var (
		debounce          = time.NewTimer(0)
		inCycle, hadEvent bool
	)
	<-debounce.C // the initial zero-delay fire carries no event; drain it
	defer debounce.Stop()

	for {
		select {
		case <-w.quit:
			return
		case <-w.ev:
			if !inCycle {
				debounce.Reset(debounceDuration)
				inCycle = true
			} else {
				hadEvent = true
			}
		case <-debounce.C:
			logger.Warnf("config: %s changed on disk; restart routerd to apply it", w.path)
			if hadEvent {
				debounce.Reset(debounceDuration)
				inCycle, hadEvent = true, false
			} else {
				inCycle, hadEvent = false, false
			}
		}
	}
}
