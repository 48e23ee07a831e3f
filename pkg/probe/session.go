// SPDX-License-Identifier: GPL-3.0-or-later

// Package probe implements the simulated terminal session. Commands
// never reach a real host, the generative-text service fabricates the
// output of each one.
package probe

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

// Session is an interactive probe session against a single device
type Session struct {
	dev     device.Device
	client  ai.Client
	in      io.Reader
	out     io.Writer
	history []string
	prompt  *color.Color
}

// NewSession returns a probe session reading commands from in and
// writing fabricated output to out
func NewSession(dev device.Device, client ai.Client, in io.Reader, out io.Writer) *Session {
	return &Session{
		dev:     dev,
		client:  client,
		in:      in,
		out:     out,
		history: []string{},
		prompt:  color.New(color.FgGreen, color.Bold),
	}
}

// History returns the commands entered so far
func (s *Session) History() []string {
	return s.history
}

// Run reads commands until exit or end of input. The builtins exit,
// quit and clear are handled locally, everything else goes to the
// text-generation service.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(
		s.out,
		"probe session opened to %s (%s). type 'exit' to leave.\n",
		s.dev.IP,
		s.dev.Hostname,
	)

	reader := bufio.NewScanner(s.in)

	for {
		s.prompt.Fprintf(s.out, "user@%s:~$ ", s.dev.IP)

		if !reader.Scan() {
			break
		}

		command := reader.Text()

		if command == "" {
			continue
		}

		switch command {
		case "exit", "quit":
			fmt.Fprintln(s.out, "connection closed.")
			return nil
		case "clear":
			s.history = []string{}
			continue
		}

		output := s.client.DeepProbe(ctx, s.dev, s.history, command)

		s.history = append(s.history, command)

		fmt.Fprintln(s.out, output)
	}

	return reader.Err()
}
