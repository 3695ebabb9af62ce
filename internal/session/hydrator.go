package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
)

// Verifier validates the upstream session carried in ctx.
type Verifier interface {
	Me(ctx context.Context) (models.Admin, error)
}

type Hydrator struct {
	store    Store
	verifier Verifier
	log      zerolog.Logger
}

func NewHydrator(store Store, verifier Verifier, log zerolog.Logger) *Hydrator {
	return &Hydrator{store: store, verifier: verifier, log: log}
}

// Hydrate resolves the session for console session id. The persisted record
// wins; without one the upstream cookie is checked once through Me. Any
// failure yields an anonymous session.
func (h *Hydrator) Hydrate(ctx context.Context, id string) Session {
	if id == "" {
		return Anonymous()
	}

	admin, err := h.store.Load(ctx, id)
	if err == nil {
		return Authenticated(admin)
	}
	if !errors.Is(err, ErrNotFound) {
		h.log.Warn().Err(err).Str("session_id", id).Msg("session load failed")
	}

	if len(apiclient.CredentialsFrom(ctx)) == 0 {
		return Anonymous()
	}

	admin, err = h.verifier.Me(ctx)
	if err != nil {
		h.log.Debug().Err(err).Str("session_id", id).Msg("upstream session check failed")
		return Anonymous()
	}

	if err := h.store.Save(ctx, id, admin); err != nil {
		h.log.Warn().Err(err).Str("session_id", id).Msg("session persist failed")
	}
	return Authenticated(admin)
}
