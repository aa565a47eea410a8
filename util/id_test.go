package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoomID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := NewRoomID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate room id %q", id)
		seen[id] = true
	}
}
