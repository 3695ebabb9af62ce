package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateadmin/console/internal/models"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewRedisStore(kv, time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	admin := models.Admin{ID: "a1", Username: "root", Email: "root@test"}
	require.NoError(t, store.Save(ctx, "s1", admin))
	assert.Equal(t, time.Hour, kv.ttls["estate-admin:session:s1"])

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, admin, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreBackendError(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("connection refused")
	store := NewRedisStore(kv, time.Hour)

	_, err := store.Load(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreCorruptRecord(t *testing.T) {
	kv := newFakeKV()
	kv.values["estate-admin:session:s1"] = "{not json"
	store := NewRedisStore(kv, time.Hour)

	_, err := store.Load(context.Background(), "s1")
	require.Error(t, err)
}
