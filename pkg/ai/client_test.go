// SPDX-License-Identifier: GPL-3.0-or-later

package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		body := map[string]any{}

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])

		resp := map[string]any{
			"choices": []map[string]any{
				{
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}

		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(url string) *ai.HTTPClient {
	return ai.NewHTTPClient(url, "test-model", "", ai.WithRateLimit(1000))
}

func TestFingerprintDevice(t *testing.T) {
	ctx := context.Background()

	dev := device.Device{IP: "192.168.1.40", Vendor: "Espressif Inc."}

	t.Run("parses the model's json guess", func(st *testing.T) {
		srv := completionServer(t, `{"os": "Linux 5.x (embedded)", "confidence": 83, "rationale": "esp vendor"}`)
		defer srv.Close()

		fp := newTestClient(srv.URL).FingerprintDevice(ctx, dev)

		assert.Equal(st, "Linux 5.x (embedded)", fp.OS)
		assert.Equal(st, 83, fp.Confidence)
		assert.Equal(st, "esp vendor", fp.Rationale)
	})

	t.Run("tolerates code fences around the json", func(st *testing.T) {
		srv := completionServer(t, "```json\n{\"os\": \"FreeBSD\", \"confidence\": 40}\n```")
		defer srv.Close()

		fp := newTestClient(srv.URL).FingerprintDevice(ctx, dev)

		assert.Equal(st, "FreeBSD", fp.OS)
		assert.Equal(st, 40, fp.Confidence)
	})

	t.Run("falls back to unknown when the service errors", func(st *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		fp := newTestClient(srv.URL).FingerprintDevice(ctx, dev)

		assert.Equal(st, "Unknown", fp.OS)
		assert.Equal(st, 0, fp.Confidence)
	})

	t.Run("falls back to unknown when the response is prose", func(st *testing.T) {
		srv := completionServer(t, "I think this is probably a Linux box.")
		defer srv.Close()

		fp := newTestClient(srv.URL).FingerprintDevice(ctx, dev)

		assert.Equal(st, "Unknown", fp.OS)
	})
}

func TestDeepProbe(t *testing.T) {
	ctx := context.Background()

	dev := device.Device{IP: "192.168.1.40", Hostname: "quiet-printer"}

	t.Run("returns fabricated output verbatim", func(st *testing.T) {
		srv := completionServer(t, "Linux quiet-printer 5.15.0 #1 SMP x86_64 GNU/Linux")
		defer srv.Close()

		out := newTestClient(srv.URL).DeepProbe(ctx, dev, []string{"ls"}, "uname -a")

		assert.Equal(st, "Linux quiet-printer 5.15.0 #1 SMP x86_64 GNU/Linux", out)
	})

	t.Run("falls back to a canned line when the service is unreachable", func(st *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		out := newTestClient(srv.URL).DeepProbe(ctx, dev, nil, "uname -a")

		assert.Contains(st, out, "did not respond")
	})
}

func TestGenerateAudit(t *testing.T) {
	ctx := context.Background()

	devices := []device.Device{
		{IP: "192.168.1.40", OpenPorts: []device.Port{{ID: 23, Service: "telnet", Status: device.PortOpen}}},
	}

	t.Run("returns the report verbatim", func(st *testing.T) {
		srv := completionServer(t, "FINDINGS\n- telnet is open on 192.168.1.40")
		defer srv.Close()

		report := newTestClient(srv.URL).GenerateAudit(ctx, devices)

		assert.Equal(st, "FINDINGS\n- telnet is open on 192.168.1.40", report)
	})

	t.Run("falls back to a canned report when the service errors", func(st *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		report := newTestClient(srv.URL).GenerateAudit(ctx, devices)

		assert.Contains(st, report, "AUDIT UNAVAILABLE")
	})
}
