// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sapan15/Omni-IP-Scanner/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults when the environment is empty", func(st *testing.T) {
		conf, err := config.Load()

		assert.NoError(st, err)
		assert.Contains(st, conf.DBPath, "omniscan")
		assert.Equal(st, "https://api.openai.com", conf.AIBaseURL)
		assert.Equal(st, "gpt-4o-mini", conf.AIModel)
		assert.Equal(st, time.Second*30, conf.AITimeout)
		assert.Equal(st, float64(1), conf.AIRate)
		assert.Equal(st, 25, conf.TicksPerPhase)
		assert.Equal(st, time.Millisecond*40, conf.TickDelay)
		assert.Equal(st, int64(0), conf.Seed)
	})

	t.Run("reads overrides from the environment", func(st *testing.T) {
		st.Setenv("OMNISCAN_DB_PATH", "/tmp/omniscan-test/state.db")
		st.Setenv("OMNISCAN_AI_URL", "http://localhost:11434")
		st.Setenv("OMNISCAN_AI_MODEL", "llama3")
		st.Setenv("OMNISCAN_AI_TIMEOUT", "5s")
		st.Setenv("OMNISCAN_AI_RPS", "2.5")
		st.Setenv("OMNISCAN_TICKS", "10")
		st.Setenv("OMNISCAN_TICK_DELAY", "5ms")
		st.Setenv("OMNISCAN_SEED", "7")

		conf, err := config.Load()

		assert.NoError(st, err)
		assert.Equal(st, "/tmp/omniscan-test/state.db", conf.DBPath)
		assert.Equal(st, "http://localhost:11434", conf.AIBaseURL)
		assert.Equal(st, "llama3", conf.AIModel)
		assert.Equal(st, time.Second*5, conf.AITimeout)
		assert.Equal(st, 2.5, conf.AIRate)
		assert.Equal(st, 10, conf.TicksPerPhase)
		assert.Equal(st, time.Millisecond*5, conf.TickDelay)
		assert.Equal(st, int64(7), conf.Seed)
	})

	t.Run("falls back to defaults on unparseable values", func(st *testing.T) {
		st.Setenv("OMNISCAN_TICKS", "lots")
		st.Setenv("OMNISCAN_TICK_DELAY", "soon")

		conf, err := config.Load()

		assert.NoError(st, err)
		assert.Equal(st, 25, conf.TicksPerPhase)
		assert.Equal(st, time.Millisecond*40, conf.TickDelay)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			DBPath:        "/tmp/state.db",
			AIBaseURL:     "http://localhost:11434",
			AITimeout:     time.Second,
			AIRate:        1,
			TicksPerPhase: 25,
			TickDelay:     time.Millisecond * 40,
		}
	}

	t.Run("accepts a sensible config", func(st *testing.T) {
		assert.NoError(st, valid().Validate())
	})

	t.Run("rejects zero ticks", func(st *testing.T) {
		conf := valid()
		conf.TicksPerPhase = 0

		assert.Error(st, conf.Validate())
	})

	t.Run("rejects a negative tick delay", func(st *testing.T) {
		conf := valid()
		conf.TickDelay = -time.Millisecond

		assert.Error(st, conf.Validate())
	})

	t.Run("rejects a non-positive request rate", func(st *testing.T) {
		conf := valid()
		conf.AIRate = 0

		assert.Error(st, conf.Validate())
	})
}
