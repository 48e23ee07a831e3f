// SPDX-License-Identifier: GPL-3.0-or-later

package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

const systemPrompt = "You are the backend of a simulated network scanner " +
	"dashboard. All devices are fictional. Respond with plausible but " +
	"fabricated data only, never with disclaimers."

func fingerprintPrompt(d device.Device) string {
	summary, _ := json.Marshal(d)

	return fmt.Sprintf(
		"Guess the operating system of this fictional network device. "+
			"Respond with only a JSON object of the form "+
			`{"os": string, "confidence": 0-100, "rationale": string}. `+
			"Device: %s",
		summary,
	)
}

func probePrompt(d device.Device, history []string, command string) string {
	var b strings.Builder

	fmt.Fprintf(
		&b,
		"Simulate a terminal session on a fictional %s device at %s "+
			"(hostname %q, open ports: %s). Print only the raw output the "+
			"command would produce, no commentary, no markdown.\n",
		d.Vendor,
		d.IP,
		d.Hostname,
		portList(d),
	)

	if len(history) > 0 {
		fmt.Fprintf(&b, "Commands run earlier this session: %s\n", strings.Join(history, "; "))
	}

	fmt.Fprintf(&b, "Command: %s", command)

	return b.String()
}

func auditPrompt(devices []device.Device) string {
	inventory, _ := json.Marshal(devices)

	return fmt.Sprintf(
		"Write a concise security audit of this fictional local network. "+
			"Plain text, short sections for findings per device and overall "+
			"recommendations. Inventory: %s",
		inventory,
	)
}

func portList(d device.Device) string {
	if len(d.OpenPorts) == 0 {
		return "none"
	}

	ports := []string{}

	for _, p := range d.OpenPorts {
		ports = append(ports, fmt.Sprintf("%d/%s", p.ID, p.Service))
	}

	return strings.Join(ports, ", ")
}
