// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
)

// randSeeder is implemented by fabricators whose randomness can be
// reseeded after construction
type randSeeder interface {
	SetRandSource(src rand.Source)
}

// SimScanner implements the Scanner interface. Each phase emits a fixed
// number of timed ticks, then the fabricator invents one device.
type SimScanner struct {
	cancel        chan struct{}
	resultChan    chan *ScanResult
	fabricator    Fabricator
	tickDelay     time.Duration
	ticksPerPhase int
	scanning      bool
	scanningMux   *sync.RWMutex
	debug         logger.DebugLogger
}

// NewSimScanner returns a new instance of SimScanner
func NewSimScanner(fabricator Fabricator, options ...Option) *SimScanner {
	scanner := &SimScanner{
		cancel:        make(chan struct{}, 1),
		resultChan:    make(chan *ScanResult),
		fabricator:    fabricator,
		tickDelay:     defaultTickDelay,
		ticksPerPhase: defaultTicksPerPhase,
		scanning:      false,
		scanningMux:   &sync.RWMutex{},
		debug:         logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(scanner)
	}

	return scanner
}

// Results returns the channel used to notify progress and findings
func (s *SimScanner) Results() chan *ScanResult {
	return s.resultChan
}

// Scan runs all phases to completion. Returns immediately if a scan is
// already in flight.
func (s *SimScanner) Scan() error {
	s.scanningMux.RLock()
	scanning := s.scanning
	s.scanningMux.RUnlock()

	if scanning {
		return nil
	}

	s.scanningMux.Lock()
	s.scanning = true
	s.scanningMux.Unlock()

	defer s.reset()

	s.debug.Info().
		Int("ticksPerPhase", s.ticksPerPhase).
		Str("tickDelay", s.tickDelay.String()).
		Msg("starting simulated scan")

	delay := s.tickDelay

	if delay <= 0 {
		delay = time.Microsecond
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for _, phase := range ScanPhases {
		for i := 1; i <= s.ticksPerPhase; i++ {
			select {
			case <-s.cancel:
				return nil
			case <-ticker.C:
			}

			if !s.send(&ScanResult{
				Type: TickResult,
				Payload: &TickPayload{
					Phase: phase,
					Index: i,
					Total: s.ticksPerPhase,
				},
			}) {
				return nil
			}
		}

		if !s.send(&ScanResult{Type: PhaseDoneResult, Payload: phase}) {
			return nil
		}
	}

	found, err := s.fabricator.Fabricate()

	if err != nil {
		return err
	}

	if !s.send(&ScanResult{Type: DeviceFoundResult, Payload: found}) {
		return nil
	}

	s.send(&ScanResult{Type: ScanDoneResult})

	return nil
}

// Stop cancels an in-flight scan
func (s *SimScanner) Stop() {
	select {
	case s.cancel <- struct{}{}:
	default:
	}
}

// SetTickDelay sets the delay between progress increments
func (s *SimScanner) SetTickDelay(d time.Duration) {
	s.tickDelay = d
}

// SetTicksPerPhase sets how many increments each phase emits
func (s *SimScanner) SetTicksPerPhase(n int) {
	s.ticksPerPhase = n
}

// SetFabricator sets the device fabricator
func (s *SimScanner) SetFabricator(f Fabricator) {
	s.fabricator = f
}

// SetRandSource reseeds the fabricator when it supports reseeding
func (s *SimScanner) SetRandSource(src rand.Source) {
	if seeder, ok := s.fabricator.(randSeeder); ok {
		seeder.SetRandSource(src)
	}
}

// send delivers a result unless the scan is cancelled first
func (s *SimScanner) send(res *ScanResult) bool {
	select {
	case <-s.cancel:
		return false
	case s.resultChan <- res:
		return true
	}
}

func (s *SimScanner) reset() {
	s.scanningMux.Lock()
	s.scanning = false
	s.scanningMux.Unlock()
}
