package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("JOURNAL_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnv("JOURNAL_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", getEnv("JOURNAL_TEST_MISSING", "fallback"))

	t.Setenv("JOURNAL_TEST_EMPTY", "")
	assert.Equal(t, "fallback", getEnv("JOURNAL_TEST_EMPTY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("JOURNAL_TEST_INT", "25")
	assert.Equal(t, 25, getEnvInt("JOURNAL_TEST_INT", 60))

	t.Setenv("JOURNAL_TEST_INT", "many")
	assert.Equal(t, 60, getEnvInt("JOURNAL_TEST_INT", 60))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("JOURNAL_TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("JOURNAL_TEST_DURATION", time.Minute))

	t.Setenv("JOURNAL_TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvDuration("JOURNAL_TEST_DURATION", time.Minute))
}
