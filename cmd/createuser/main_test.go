package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--id", "admin01", "--nome", "Maria", "--senha", "segredo123"})
	require.NoError(t, err)

	assert.Equal(t, "admin01", opts.id)
	assert.Equal(t, "Maria", opts.name)
	assert.Equal(t, "segredo123", opts.password)
	assert.Equal(t, "admin", opts.role)
	assert.Equal(t, "./cmd/app/config.yml", opts.configPath)
}

func TestParseFlags_PasswordFromEnv(t *testing.T) {
	t.Setenv("EVENTO_USER_PASSWORD", "fromenv123")

	opts, err := parseFlags([]string{"--id", "admin01", "--nome", "Maria"})
	require.NoError(t, err)
	assert.Equal(t, "fromenv123", opts.password)
}

func TestParseFlags_MissingRequired(t *testing.T) {
	t.Setenv("EVENTO_USER_PASSWORD", "")

	_, err := parseFlags([]string{"--id", "admin01"})
	require.Error(t, err)
}
