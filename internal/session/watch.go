// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

// Watch registers an observer for session transitions. The returned
// channel receives a snapshot after every completed state change; the
// returned func unsubscribes and must be called to release the channel.
//
// Sends never block: a watcher that has not drained the previous
// snapshot misses intermediate updates and should read Current for the
// latest state.
func (m *Manager) Watch() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	m.mu.Lock()
	id := m.nextWatcher
	m.nextWatcher++
	m.watchers[id] = ch
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		delete(m.watchers, id)
		m.mu.Unlock()
	}
	return ch, cancel
}

// notify fans a snapshot out to all watchers without blocking.
func (m *Manager) notify(snap Snapshot) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ch := range m.watchers {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot and retry so the watcher
			// always ends up holding the newest one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
