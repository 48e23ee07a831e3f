// SPDX-License-Identifier: GPL-3.0-or-later

package ai

// Fallback values returned whenever the text-generation service fails.
// The dashboard keeps working with these instead of showing errors.

var fallbackFingerprint = Fingerprint{
	OS:         "Unknown",
	Confidence: 0,
	Rationale:  "fingerprint service unavailable",
}

const fallbackProbeOutput = "probe: connection timed out. Remote host did not respond."

const fallbackAudit = `SECURITY AUDIT UNAVAILABLE

The audit service could not be reached. General guidance:
- Disable remote management on devices that do not need it.
- Close unused open ports, in particular telnet (23) and SMB (445).
- Keep device firmware up to date and rotate default credentials.`
