// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/scanner"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner drives a simulated scan and renders its results
type Runner interface {
	Initialize(
		coreScanner scanner.Scanner,
		registry *device.Registry,
		noProgress bool,
		printJson bool,
		outFile string,
	)
	Run() error
}
