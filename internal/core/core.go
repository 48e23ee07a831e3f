// SPDX-License-Identifier: GPL-3.0-or-later

// Package core orchestrates the simulated scan: it consumes scanner
// events, animates one progress tracker per phase, and renders the
// resulting inventory
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/progress"
	"github.com/jedib0t/go-pretty/table"
	"github.com/rs/zerolog"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/internal/util"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/scanner"
)

// Core implements Runner
type Core struct {
	noProgress bool
	printJson  bool
	outFile    string
	registry   *device.Registry
	pw         progress.Writer
	trackers   map[scanner.Phase]*progress.Tracker
	errorChan  chan error
	scanner    scanner.Scanner
	log        logger.Logger
}

// New returns a new Core
func New() *Core {
	return &Core{
		trackers: map[scanner.Phase]*progress.Tracker{},
		log:      logger.New(),
	}
}

// Initialize prepares Core to run a scan
func (c *Core) Initialize(
	coreScanner scanner.Scanner,
	registry *device.Registry,
	noProgress bool,
	printJson bool,
	outFile string,
) {
	if noProgress {
		logger.SetGlobalLevel(zerolog.Disabled)
	}

	c.scanner = coreScanner
	c.registry = registry
	c.errorChan = make(chan error)
	c.pw = progressWriter()
	c.noProgress = noProgress
	c.printJson = printJson
	c.outFile = outFile
}

// Run drives the scan to completion and prints the inventory
func (c *Core) Run() error {
	start := time.Now()

	if !c.noProgress {
		go c.pw.Render()
	}

	// run in go routine so we can process results in parallel
	go func() {
		if err := c.scanner.Scan(); err != nil {
			c.errorChan <- err
		}
	}()

OUTER:
	for {
		select {
		case err := <-c.errorChan:
			return err
		case res := <-c.scanner.Results():
			switch res.Type {
			case scanner.TickResult:
				c.processTick(res.Payload.(*scanner.TickPayload))
			case scanner.PhaseDoneResult:
				c.log.Debug().
					Str("phase", string(res.Payload.(scanner.Phase))).
					Msg("phase complete")
			case scanner.DeviceFoundResult:
				c.processDevice(res.Payload.(*device.Device))
			case scanner.ScanDoneResult:
				if err := c.printResults(); err != nil {
					return err
				}
				break OUTER
			}
		}
	}

	c.log.Info().
		Str("duration", time.Since(start).String()).
		Msg("scan complete")

	return nil
}

func (c *Core) processTick(tick *scanner.TickPayload) {
	if c.noProgress {
		return
	}

	tracker, ok := c.trackers[tick.Phase]

	if !ok {
		tracker = &progress.Tracker{
			Message: string(tick.Phase),
			Total:   int64(tick.Total),
		}
		c.trackers[tick.Phase] = tracker
		c.pw.AppendTracker(tracker)
	}

	tracker.Increment(1)

	if tracker.IsDone() {
		tracker.Message = fmt.Sprintf("%s - complete", tick.Phase)
	}
}

// processDevice appends the fabricated device unless its IP is already
// in the inventory
func (c *Core) processDevice(found *device.Device) {
	err := c.registry.Add(*found)

	if errors.Is(err, device.ErrDeviceExists) {
		c.log.Info().
			Str("ip", found.IP).
			Msg("device already in inventory, nothing new found")
		return
	}

	if err != nil {
		go func() {
			c.errorChan <- err
		}()
		return
	}

	c.log.Info().
		Str("ip", found.IP).
		Str("mac", found.MAC).
		Str("vendor", found.Vendor).
		Msg("new device discovered")
}

func (c *Core) printResults() error {
	if c.printJson {
		data, err := json.MarshalIndent(c.registry.List(), "", "  ")

		if err != nil {
			return err
		}

		fmt.Println(string(data))

		if c.outFile != "" {
			if err := os.WriteFile(c.outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write output report: %w", err)
			}
		}

		return nil
	}

	output := RenderDeviceTable(c.registry.List())

	if c.outFile != "" {
		if err := os.WriteFile(c.outFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output report: %w", err)
		}
	}

	return nil
}

// RenderDeviceTable renders the inventory to stdout and returns the
// rendered text
func RenderDeviceTable(devices []device.Device) string {
	deviceTable := table.NewWriter()
	deviceTable.SetOutputMirror(os.Stdout)
	deviceTable.AppendHeader(table.Row{"IP", "MAC", "HOSTNAME", "VENDOR", "STATUS", "OS", "OPEN PORTS"})

	for _, d := range devices {
		openPorts := util.MapSlice(d.OpenPorts, func(p device.Port) string {
			return fmt.Sprintf("%s:%d", p.Service, p.ID)
		})

		deviceTable.AppendRow(table.Row{
			d.IP,
			d.MAC,
			d.Hostname,
			d.Vendor,
			d.Status,
			d.OSGuess,
			strings.Join(openPorts, ","),
		})
	}

	return deviceTable.Render()
}

// helpers
func progressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetMessageWidth(30)
	pw.SetNumTrackersExpected(len(scanner.ScanPhases))
	pw.SetSortBy(progress.SortByPercentDsc)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.3f%%"

	return pw
}
