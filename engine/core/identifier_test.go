package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierAcquireIsSequential(t *testing.T) {
	first := IdentifierAcquireNewID("a")
	second := IdentifierAcquireNewID("b")
	assert.Equal(t, first+1, second)
}

func TestIdentifierReleasedIDsAreReused(t *testing.T) {
	first := IdentifierAcquireNewID("a")
	second := IdentifierAcquireNewID("b")
	require.NoError(t, IdentifierReleaseID(first))

	reused := IdentifierAcquireNewID("c")
	assert.Equal(t, first, reused)
	assert.NotEqual(t, second, reused)
}

func TestIdentifierReleaseOutOfRange(t *testing.T) {
	err := IdentifierReleaseID(1 << 30)
	assert.Error(t, err)
}
