package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
)

type fakeVerifier struct {
	admin models.Admin
	err   error
	calls int
}

func (f *fakeVerifier) Me(context.Context) (models.Admin, error) {
	f.calls++
	return f.admin, f.err
}

func withCookie(ctx context.Context) context.Context {
	return apiclient.WithCredentials(ctx, apiclient.Credentials{{Name: "adminToken", Value: "tok"}})
}

func TestHydratePersistedRecordWins(t *testing.T) {
	store := NewRedisStore(newFakeKV(), time.Hour)
	require.NoError(t, store.Save(context.Background(), "s1", models.Admin{ID: "a1", Username: "root"}))
	verifier := &fakeVerifier{err: errors.New("must not be called")}

	s := NewHydrator(store, verifier, zerolog.Nop()).Hydrate(withCookie(context.Background()), "s1")

	assert.True(t, s.Authorized)
	assert.Equal(t, "root", s.Admin.Username)
	assert.Zero(t, verifier.calls)
}

func TestHydrateChecksUpstreamOnce(t *testing.T) {
	store := NewRedisStore(newFakeKV(), time.Hour)
	verifier := &fakeVerifier{admin: models.Admin{ID: "a1", Username: "root"}}
	h := NewHydrator(store, verifier, zerolog.Nop())

	s := h.Hydrate(withCookie(context.Background()), "s1")
	assert.True(t, s.Authorized)
	assert.Equal(t, 1, verifier.calls)

	persisted, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "a1", persisted.ID)

	// second request is served from the persisted record
	h.Hydrate(withCookie(context.Background()), "s1")
	assert.Equal(t, 1, verifier.calls)
}

func TestHydrateFailedCheckIsAnonymous(t *testing.T) {
	store := NewRedisStore(newFakeKV(), time.Hour)
	verifier := &fakeVerifier{err: &apiclient.Error{StatusCode: http.StatusUnauthorized}}

	s := NewHydrator(store, verifier, zerolog.Nop()).Hydrate(withCookie(context.Background()), "s1")

	assert.Equal(t, Anonymous(), s)
	assert.Equal(t, 1, verifier.calls)
	_, err := store.Load(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHydrateWithoutUpstreamCookie(t *testing.T) {
	verifier := &fakeVerifier{admin: models.Admin{ID: "a1"}}
	h := NewHydrator(NewRedisStore(newFakeKV(), time.Hour), verifier, zerolog.Nop())

	assert.Equal(t, Anonymous(), h.Hydrate(context.Background(), "s1"))
	assert.Equal(t, Anonymous(), h.Hydrate(withCookie(context.Background()), ""))
	assert.Zero(t, verifier.calls)
}

func TestHydrateStoreDownFallsBackToUpstream(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("redis down")
	verifier := &fakeVerifier{admin: models.Admin{ID: "a1"}}

	s := NewHydrator(NewRedisStore(kv, time.Hour), verifier, zerolog.Nop()).Hydrate(withCookie(context.Background()), "s1")

	assert.True(t, s.Authorized)
	assert.Equal(t, 1, verifier.calls)
}
