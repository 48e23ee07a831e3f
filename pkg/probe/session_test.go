// SPDX-License-Identifier: GPL-3.0-or-later

package probe_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_ai "github.com/sapan15/Omni-IP-Scanner/mock/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/probe"
)

func TestSession(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	dev := device.Device{IP: "192.168.1.40", Hostname: "quiet-printer"}

	t.Run("forwards commands and prints fabricated output", func(st *testing.T) {
		client := mock_ai.NewMockClient(ctrl)

		client.EXPECT().
			DeepProbe(ctx, dev, gomock.Eq([]string{}), "uname -a").
			Return("Linux quiet-printer 5.15.0 #1 SMP x86_64 GNU/Linux")

		client.EXPECT().
			DeepProbe(ctx, dev, gomock.Eq([]string{"uname -a"}), "whoami").
			Return("user")

		in := strings.NewReader("uname -a\nwhoami\nexit\n")
		out := &bytes.Buffer{}

		session := probe.NewSession(dev, client, in, out)

		err := session.Run(ctx)

		assert.NoError(st, err)
		assert.Contains(st, out.String(), "probe session opened to 192.168.1.40")
		assert.Contains(st, out.String(), "Linux quiet-printer 5.15.0")
		assert.Contains(st, out.String(), "connection closed.")
		assert.Equal(st, []string{"uname -a", "whoami"}, session.History())
	})

	t.Run("clear resets the session history", func(st *testing.T) {
		client := mock_ai.NewMockClient(ctrl)

		client.EXPECT().
			DeepProbe(ctx, dev, gomock.Eq([]string{}), "ls").
			Return("bin  etc  tmp")

		client.EXPECT().
			DeepProbe(ctx, dev, gomock.Eq([]string{}), "pwd").
			Return("/home/user")

		in := strings.NewReader("ls\nclear\npwd\nquit\n")
		out := &bytes.Buffer{}

		session := probe.NewSession(dev, client, in, out)

		err := session.Run(ctx)

		assert.NoError(st, err)
		assert.Equal(st, []string{"pwd"}, session.History())
	})

	t.Run("skips empty lines and stops at end of input", func(st *testing.T) {
		client := mock_ai.NewMockClient(ctrl)

		in := strings.NewReader("\n\n")
		out := &bytes.Buffer{}

		err := probe.NewSession(dev, client, in, out).Run(ctx)

		assert.NoError(st, err)
	})
}
