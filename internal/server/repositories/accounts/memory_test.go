package accounts

import (
	"context"
	"testing"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.Account{Username: "alice", Salt: []byte("s"), Verifier: []byte("v")}))

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, []byte("v"), got.Verifier)

	_, err = r.Get(ctx, "bob")
	assert.ErrorIs(t, err, common.ErrUnknownUser)
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.Account{Username: "alice"}))
	assert.ErrorIs(t, r.Create(ctx, &models.Account{Username: "alice"}), common.ErrUsernameTaken)

	usernames, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames)
}

func TestMemoryRepository_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	for _, u := range []string{"carol", "alice", "bob"} {
		require.NoError(t, r.Create(ctx, &models.Account{Username: u}))
	}

	usernames, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "alice", "bob"}, usernames)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.Account{Username: "alice"}))
	require.NoError(t, r.Delete(ctx, "alice"))

	_, err := r.Get(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrUnknownUser)
	assert.ErrorIs(t, r.Delete(ctx, "alice"), common.ErrUnknownUser)

	usernames, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, usernames)
}
