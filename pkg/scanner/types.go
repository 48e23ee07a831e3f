// SPDX-License-Identifier: GPL-3.0-or-later

// Package scanner implements the simulated discovery scan. A scan is a
// fixed sequence of timed phases that animates progress and ends by
// fabricating at most one new device. Nothing is sent on the wire.
package scanner

import (
	"math/rand"
	"time"
)

//go:generate mockgen -destination=../../mock/scanner/scanner.go -package=mock_scanner . Scanner,Fabricator

// Phase is a named stage of the simulated scan
type Phase string

const (
	// PhaseSweep pretends to walk the arp cache
	PhaseSweep Phase = "arp cache sweep"
	// PhasePortProbe pretends to probe common ports
	PhasePortProbe Phase = "port probe"
	// PhaseVendorResolve pretends to resolve hardware vendors
	PhaseVendorResolve Phase = "vendor resolution"
	// PhaseFingerprint pretends to analyze os fingerprints
	PhaseFingerprint Phase = "os fingerprint"
)

// ScanPhases is the fixed phase order of every scan
var ScanPhases = []Phase{
	PhaseSweep,
	PhasePortProbe,
	PhaseVendorResolve,
	PhaseFingerprint,
}

type ResultType string

const (
	TickResult        ResultType = "TICK"
	PhaseDoneResult   ResultType = "PHASE_DONE"
	DeviceFoundResult ResultType = "DEVICE_FOUND"
	ScanDoneResult    ResultType = "SCAN_DONE"
)

// TickPayload reports progress within a phase
type TickPayload struct {
	Phase Phase
	Index int
	Total int
}

// ScanResult is a single event emitted on the results channel
type ScanResult struct {
	Type    ResultType
	Payload any
}

// Scanner interface for running the simulated scan
type Scanner interface {
	Scan() error
	Stop()
	Results() chan *ScanResult
	SetTickDelay(d time.Duration)
	SetTicksPerPhase(n int)
	SetFabricator(f Fabricator)
	SetRandSource(src rand.Source)
}
