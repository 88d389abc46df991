package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linklogic/internal/domain"
)

func openTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := Open(filepath.Join(t.TempDir(), "players.db"))
	require.NoError(t, err)
	t.Cleanup(func() { reg.Close() })
	return reg
}

func TestRegisterAndGet(t *testing.T) {
	reg := openTestRegistry(t)
	ctx := context.Background()

	created, err := reg.Register(ctx, "Ana Silva", "ana_s", "555-123-4567", "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.PlayerID)

	fetched, err := reg.Get(ctx, created.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, "ana_s", fetched.PlayerName)
	assert.Equal(t, "Ana Silva", fetched.RealName)
	assert.Equal(t, "ana@example.com", fetched.Email)
}

func TestRegisterTrimsFields(t *testing.T) {
	reg := openTestRegistry(t)

	created, err := reg.Register(context.Background(), "  Ana  ", "  ana  ", "5551234567", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.RealName)
	assert.Equal(t, "ana", created.PlayerName)
}

func TestRegisterNameTakenCaseInsensitive(t *testing.T) {
	reg := openTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Register(ctx, "Ana", "WordSmith", "5551234567", "")
	require.NoError(t, err)

	_, err = reg.Register(ctx, "Ben", "wordsmith", "5559876543", "")
	assert.ErrorIs(t, err, domain.ErrNameTaken)

	taken, err := reg.NameTaken(ctx, "WORDSMITH")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = reg.NameTaken(ctx, "someone_else")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestGetUnknownPlayer(t *testing.T) {
	reg := openTestRegistry(t)

	_, err := reg.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name       string
		realName   string
		playerName string
		phone      string
		email      string
		ok         bool
	}{
		{"valid", "Ana", "ana_1", "5551234567", "ana@example.com", true},
		{"valid without email", "Ana", "ana 1", "(555) 123-4567", "", true},
		{"missing real name", "", "ana", "5551234567", "", false},
		{"missing player name", "Ana", "", "5551234567", "", false},
		{"player name too long", "Ana", "abcdefghijklmnopqrstu", "5551234567", "", false},
		{"player name bad characters", "Ana", "ana!", "5551234567", "", false},
		{"phone too short", "Ana", "ana", "12345", "", false},
		{"phone with letters", "Ana", "ana", "ab12345678901x", "", false},
		{"phone missing", "Ana", "ana", "", "", false},
		{"bad email", "Ana", "ana", "5551234567", "not-an-email", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegistration(tc.realName, tc.playerName, tc.phone, tc.email)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}
}
