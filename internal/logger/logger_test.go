package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBeforeInitialize(t *testing.T) {
	log = nil
	assert.NotNil(t, Get())
}

func TestSyncBeforeInitialize(t *testing.T) {
	log = nil
	assert.NoError(t, Sync())
}

func TestInitializeForTest(t *testing.T) {
	log = nil
	InitializeForTest()
	require.NotNil(t, Get())
	assert.NoError(t, Sync())
}
