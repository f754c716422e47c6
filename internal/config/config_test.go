package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Match.Hands)
	assert.Equal(t, 2, cfg.Match.BigBlind)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load("does-not-exist.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse(t *testing.T) {
	src := `
match {
  hands          = 500
  starting_stack = 100
  seed           = 42
  player_bot     = "warren"
  hand_delay     = "250ms"
}

batch {
  tables = 8
}

bot "loose" {
  engine     = "warren"
  aggression = 0.95
}
`
	cfg, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 500, cfg.Match.Hands)
	assert.Equal(t, 100, cfg.Match.StartingStack)
	assert.Equal(t, 42, cfg.Match.Seed)
	assert.Equal(t, "warren", cfg.Match.PlayerBot)
	assert.Equal(t, "warren", cfg.Match.OpponentBot, "default applied")
	assert.Equal(t, 1, cfg.Match.SmallBlind, "default applied")
	assert.Equal(t, 8, cfg.Batch.Tables)

	delay, err := cfg.Match.ParsedHandDelay()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, delay)

	loose := cfg.BotByName("loose")
	require.NotNil(t, loose)
	assert.Equal(t, "warren", loose.Engine)
	require.NotNil(t, loose.Aggression)
	assert.Equal(t, 0.95, *loose.Aggression)
	assert.Nil(t, loose.BluffFactor)
	assert.Nil(t, cfg.BotByName("tight"))
}

func TestParseRejectsBadHCL(t *testing.T) {
	_, err := Parse([]byte(`match {`), "broken.hcl")
	require.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero hands", func(c *Config) { c.Match.Hands = 0 }},
		{"blind order", func(c *Config) { c.Match.SmallBlind = 4 }},
		{"short stack", func(c *Config) { c.Match.StartingStack = 1 }},
		{"bad delay", func(c *Config) { c.Match.HandDelay = "sometime" }},
		{"zero tables", func(c *Config) { c.Batch.Tables = -1 }},
		{"bot without engine", func(c *Config) { c.Bots = []BotConfig{{Name: "x"}} }},
		{"personality range", func(c *Config) {
			v := 1.5
			c.Bots = []BotConfig{{Name: "x", Engine: "warren", Aggression: &v}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
