// SPDX-License-Identifier: GPL-3.0-or-later

// Package store persists the dashboard state and audit reports
package store

import (
	"time"

	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

//go:generate mockgen -destination=../../mock/store/store.go -package=mock_store . Repository

// State is the entire application state. It is always written as a
// single document, mirroring a whole-blob save on every change.
type State struct {
	Devices []device.Device `json:"devices"`
	SavedAt time.Time       `json:"savedAt"`
}

// Report is a stored audit report
type Report struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository interface for persisting dashboard state
type Repository interface {
	LoadState() (*State, error)
	SaveState(state *State) error
	SaveReport(kind, body string) error
	Reports(limit int) ([]Report, error)
	Reset() error
	Close() error
}
