package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationRedis_Revoke(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRevocationRedis(client, "cleanneat", time.Hour)
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectSet("cleanneat:revoked:u1", at.Unix(), time.Hour).SetVal("OK")

	require.NoError(t, store.Revoke(context.Background(), "u1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRevocationRedis_Revoke_Error(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRevocationRedis(client, "cleanneat", time.Hour)
	at := time.Unix(1700000000, 0)

	mock.ExpectSet("cleanneat:revoked:u1", at.Unix(), time.Hour).SetErr(errors.New("connection refused"))

	err := store.Revoke(context.Background(), "u1", at)
	assert.ErrorContains(t, err, "failed to revoke tokens")
}

func TestRevocationRedis_RevokedAt(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(redismock.ClientMock)
		wantAt  time.Time
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "revoked",
			setup:  func(m redismock.ClientMock) { m.ExpectGet("p:revoked:u1").SetVal("1700000000") },
			wantAt: time.Unix(1700000000, 0),
			wantOK: true,
		},
		{
			name:  "not revoked",
			setup: func(m redismock.ClientMock) { m.ExpectGet("p:revoked:u1").SetErr(redis.Nil) },
		},
		{
			name:    "redis error",
			setup:   func(m redismock.ClientMock) { m.ExpectGet("p:revoked:u1").SetErr(errors.New("timeout")) },
			wantErr: true,
		},
		{
			name:    "corrupt value",
			setup:   func(m redismock.ClientMock) { m.ExpectGet("p:revoked:u1").SetVal("yesterday") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setup(mock)

			at, ok, err := NewRevocationRedis(client, "p", time.Hour).RevokedAt(context.Background(), "u1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.wantAt.Equal(at))
		})
	}
}
