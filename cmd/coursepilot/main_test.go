package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/kaitongg-bit/course-pilot/core"
)

func TestParseAvailability(t *testing.T) {
	t.Run("empty string means no constraint", func(t *testing.T) {
		availability, err := parseAvailability("")
		require.NoError(t, err)
		assert.Nil(t, availability)
	})

	t.Run("valid JSON", func(t *testing.T) {
		availability, err := parseAvailability(`{"M":["9:00 AM","9:30 AM"],"W":["9:00 AM"]}`)
		require.NoError(t, err)

		assert.True(t, availability.Allows("M", "9:00 AM"))
		assert.True(t, availability.Allows("M", "9:30 AM"))
		assert.True(t, availability.Allows("W", "9:00 AM"))
		assert.False(t, availability.Allows("W", "9:30 AM"))
		assert.False(t, availability.Allows("F", "9:00 AM"))
	})

	t.Run("day codes are normalized to upper case", func(t *testing.T) {
		availability, err := parseAvailability(`{"m":["1:00 PM"]}`)
		require.NoError(t, err)
		assert.True(t, availability.Allows("M", "1:00 PM"))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := parseAvailability(`{"M": not json}`)
		assert.Error(t, err)
	})

	t.Run("result type", func(t *testing.T) {
		availability, err := parseAvailability(`{"M":[]}`)
		require.NoError(t, err)
		assert.IsType(t, core.Availability{}, availability)
	})
}

func TestSplitSkills(t *testing.T) {
	assert.Nil(t, splitSkills(""))
	assert.Nil(t, splitSkills("   "))
	assert.Equal(t, []string{"python", "sql"}, splitSkills("python, sql"))
	assert.Equal(t, []string{"go"}, splitSkills("go,,"))
}

func TestSetupLogger(t *testing.T) {
	newContext := func(level string) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String("log-level", level, "")
		return cli.NewContext(&cli.App{}, set, nil)
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			assert.NoError(t, setupLogger(newContext(level)), "level %s", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, setupLogger(newContext("verbose")))
	})
}
