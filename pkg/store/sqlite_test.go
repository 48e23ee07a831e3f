// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))

	assert.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestSQLiteStore(t *testing.T) {
	t.Run("loads an empty state before anything is saved", func(st *testing.T) {
		s := newTestStore(st)

		state, err := s.LoadState()

		assert.NoError(st, err)
		assert.NotNil(st, state)
		assert.Empty(st, state.Devices)
	})

	t.Run("round-trips the whole state document", func(st *testing.T) {
		s := newTestStore(st)

		err := s.SaveState(&store.State{
			Devices: []device.Device{
				{
					IP:       "192.168.1.20",
					MAC:      "B8:27:EB:01:02:03",
					Hostname: "quiet-printer",
					Status:   device.StatusOnline,
					OpenPorts: []device.Port{
						{ID: 22, Service: "ssh", Status: device.PortOpen},
					},
				},
			},
		})

		assert.NoError(st, err)

		state, err := s.LoadState()

		assert.NoError(st, err)
		assert.Len(st, state.Devices, 1)
		assert.Equal(st, "quiet-printer", state.Devices[0].Hostname)
		assert.Equal(st, uint16(22), state.Devices[0].OpenPorts[0].ID)
		assert.False(st, state.SavedAt.IsZero())
	})

	t.Run("each save replaces the previous state", func(st *testing.T) {
		s := newTestStore(st)

		assert.NoError(st, s.SaveState(&store.State{
			Devices: []device.Device{{IP: "192.168.1.2"}, {IP: "192.168.1.3"}},
		}))

		assert.NoError(st, s.SaveState(&store.State{
			Devices: []device.Device{{IP: "192.168.1.9"}},
		}))

		state, err := s.LoadState()

		assert.NoError(st, err)
		assert.Len(st, state.Devices, 1)
		assert.Equal(st, "192.168.1.9", state.Devices[0].IP)
	})

	t.Run("drops saved records without an ip", func(st *testing.T) {
		s := newTestStore(st)

		assert.NoError(st, s.SaveState(&store.State{
			Devices: []device.Device{
				{IP: "192.168.1.2"},
				{Hostname: "orphaned-record"},
			},
		}))

		state, err := s.LoadState()

		assert.NoError(st, err)
		assert.Len(st, state.Devices, 1)
		assert.Equal(st, "192.168.1.2", state.Devices[0].IP)
	})

	t.Run("returns reports newest first", func(st *testing.T) {
		s := newTestStore(st)

		assert.NoError(st, s.SaveReport("audit", "first report"))
		assert.NoError(st, s.SaveReport("audit", "second report"))
		assert.NoError(st, s.SaveReport("audit", "third report"))

		reports, err := s.Reports(2)

		assert.NoError(st, err)
		assert.Len(st, reports, 2)
		assert.Equal(st, "third report", reports[0].Body)
		assert.Equal(st, "second report", reports[1].Body)
	})

	t.Run("reset clears state and reports", func(st *testing.T) {
		s := newTestStore(st)

		assert.NoError(st, s.SaveState(&store.State{
			Devices: []device.Device{{IP: "192.168.1.2"}},
		}))
		assert.NoError(st, s.SaveReport("audit", "old report"))

		assert.NoError(st, s.Reset())

		state, err := s.LoadState()

		assert.NoError(st, err)
		assert.Empty(st, state.Devices)

		reports, err := s.Reports(10)

		assert.NoError(st, err)
		assert.Empty(st, reports)
	})
}
