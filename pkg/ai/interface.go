// SPDX-License-Identifier: GPL-3.0-or-later

// Package ai wraps a generative-text API that fabricates OS guesses,
// probe output, and audit reports for the dashboard
package ai

import (
	"context"

	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

//go:generate mockgen -destination=../../mock/ai/ai.go -package=mock_ai . Client

// Fingerprint is the model's OS guess for a device
type Fingerprint struct {
	OS         string `json:"os"`
	Confidence int    `json:"confidence"`
	Rationale  string `json:"rationale"`
}

// Client interface for the generative-text service. Implementations
// must never surface transport errors to callers: every operation has a
// hard-coded fallback value that is returned instead.
type Client interface {
	FingerprintDevice(ctx context.Context, d device.Device) *Fingerprint
	DeepProbe(ctx context.Context, d device.Device, history []string, command string) string
	GenerateAudit(ctx context.Context, devices []device.Device) string
}
