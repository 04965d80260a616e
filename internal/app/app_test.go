package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz/internal/config"
	"quiz/internal/lib/logger/handlers/slogdiscard"
)

var storageCfg = config.StorageConfig{UsersCapacity: 10, QuestionsCapacity: 10}

func TestRun_SeedsDemoUsers(t *testing.T) {
	var out bytes.Buffer

	a, err := New(slogdiscard.NewDiscardLogger(), storageCfg, strings.NewReader("1\nuser2\npass2\n5\n"), &out)
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Login successful as TEACHER\n")
}

func TestRun_InputClosed(t *testing.T) {
	var out bytes.Buffer

	a, err := New(slogdiscard.NewDiscardLogger(), storageCfg, strings.NewReader("1\nuser1\npass1\n"), &out)
	require.NoError(t, err)

	assert.NoError(t, a.Run(context.Background()))
	assert.NotPanics(t, func() {
		b, err := New(slogdiscard.NewDiscardLogger(), storageCfg, strings.NewReader(""), &out)
		require.NoError(t, err)
		b.MustRun(context.Background())
	})
}

func TestNew_InvalidStorage(t *testing.T) {
	_, err := New(slogdiscard.NewDiscardLogger(), config.StorageConfig{}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_DirectoryTooSmallForSeed(t *testing.T) {
	a, err := New(
		slogdiscard.NewDiscardLogger(),
		config.StorageConfig{UsersCapacity: 2, QuestionsCapacity: 1},
		strings.NewReader(""),
		&bytes.Buffer{},
	)
	require.NoError(t, err)

	assert.Error(t, a.Run(context.Background()))
}
