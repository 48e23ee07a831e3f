// SPDX-License-Identifier: GPL-3.0-or-later

// Package device defines the device inventory model and registry
package device

import "time"

// Status represents possible device statuses
type Status string

const (
	// StatusUnknown unknown status for a device
	StatusUnknown Status = "unknown"
	// StatusOnline status if a device is online
	StatusOnline Status = "online"
	// StatusOffline status if a device is offline
	StatusOffline Status = "offline"
)

// PortStatus represents possible port statuses
type PortStatus string

const (
	// PortOpen status used when a port is marked open
	PortOpen PortStatus = "open"
	// PortClosed status used when a port is marked closed
	PortClosed PortStatus = "closed"
)

// Port data structure representing a device port
type Port struct {
	ID      uint16     `json:"id"`
	Service string     `json:"service"`
	Status  PortStatus `json:"status"`
}

// Device is a single inventory record. All fields are fabricated or
// user supplied, none are observed on a real network.
type Device struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	MAC       string    `json:"mac"`
	Hostname  string    `json:"hostname"`
	Vendor    string    `json:"vendor"`
	Status    Status    `json:"status"`
	OpenPorts []Port    `json:"openPorts"`
	OSGuess   string    `json:"osGuess"`
	FirstSeen time.Time `json:"firstSeen"`
	LastSeen  time.Time `json:"lastSeen"`
	Notes     string    `json:"notes"`
}
