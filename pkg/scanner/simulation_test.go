// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_scanner "github.com/sapan15/Omni-IP-Scanner/mock/scanner"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/scanner"
)

func TestScanPhaseLabels(t *testing.T) {
	assert.Equal(t, []scanner.Phase{
		"arp cache sweep",
		"port probe",
		"vendor resolution",
		"os fingerprint",
	}, scanner.ScanPhases)
}

func TestSimScanner(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("emits every phase and ends with one fabricated device", func(st *testing.T) {
		fabricator := mock_scanner.NewMockFabricator(ctrl)

		expected := &device.Device{IP: "192.168.1.50", MAC: "B8:27:EB:00:11:22"}

		fabricator.EXPECT().Fabricate().Return(expected, nil)

		sim := scanner.NewSimScanner(
			fabricator,
			scanner.WithTicksPerPhase(3),
			scanner.WithTickDelay(time.Microsecond),
		)

		scanErr := make(chan error)

		go func() {
			scanErr <- sim.Scan()
		}()

		ticks := map[scanner.Phase]int{}
		phasesDone := []scanner.Phase{}

		var found *device.Device

	OUTER:
		for res := range sim.Results() {
			switch res.Type {
			case scanner.TickResult:
				tick := res.Payload.(*scanner.TickPayload)
				ticks[tick.Phase]++
				assert.Equal(st, 3, tick.Total)
			case scanner.PhaseDoneResult:
				phasesDone = append(phasesDone, res.Payload.(scanner.Phase))
			case scanner.DeviceFoundResult:
				found = res.Payload.(*device.Device)
			case scanner.ScanDoneResult:
				break OUTER
			}
		}

		assert.NoError(st, <-scanErr)

		assert.Equal(st, scanner.ScanPhases, phasesDone)

		for _, phase := range scanner.ScanPhases {
			assert.Equal(st, 3, ticks[phase])
		}

		assert.Equal(st, expected, found)
	})

	t.Run("returns immediately if already scanning", func(st *testing.T) {
		fabricator := mock_scanner.NewMockFabricator(ctrl)

		fabricator.EXPECT().Fabricate().AnyTimes().Return(&device.Device{IP: "192.168.1.51"}, nil)

		sim := scanner.NewSimScanner(
			fabricator,
			scanner.WithTicksPerPhase(1000),
			scanner.WithTickDelay(time.Millisecond),
		)

		// drain results so the first scan can make progress
		go func() {
			for range sim.Results() {
			}
		}()

		go sim.Scan()

		// give the first scan time to mark itself running
		time.Sleep(time.Millisecond * 20)

		err := sim.Scan()

		assert.NoError(st, err)

		sim.Stop()
	})

	t.Run("stop cancels an in-flight scan", func(st *testing.T) {
		fabricator := mock_scanner.NewMockFabricator(ctrl)

		sim := scanner.NewSimScanner(
			fabricator,
			scanner.WithTicksPerPhase(1000),
			scanner.WithTickDelay(time.Millisecond),
		)

		scanErr := make(chan error)

		go func() {
			scanErr <- sim.Scan()
		}()

		// consume a few ticks then cancel
		for i := 0; i < 3; i++ {
			<-sim.Results()
		}

		sim.Stop()

		assert.NoError(st, <-scanErr)
	})

	t.Run("returns error when fabrication fails", func(st *testing.T) {
		fabricator := mock_scanner.NewMockFabricator(ctrl)

		mockErr := errors.New("mock fabricate error")

		fabricator.EXPECT().Fabricate().Return(nil, mockErr)

		sim := scanner.NewSimScanner(
			fabricator,
			scanner.WithTicksPerPhase(1),
			scanner.WithTickDelay(time.Microsecond),
		)

		go func() {
			for range sim.Results() {
			}
		}()

		err := sim.Scan()

		assert.ErrorIs(st, err, mockErr)
	})
}
