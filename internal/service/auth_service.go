package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator is the remote login endpoint.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (apiclient.LoginResult, error)
}

type AuthService struct {
	api      Authenticator
	sessions session.Store
	activity *ActivityService
	log      zerolog.Logger
}

func NewAuthService(api Authenticator, sessions session.Store, activity *ActivityService, log zerolog.Logger) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		activity: activity,
		log:      log,
	}
}

type LoginInput struct {
	SessionID string
	Username  string
	Password  string
}

type LoginResult struct {
	Session     session.Session
	Credentials apiclient.Credentials
}

// Login authenticates upstream and persists the admin record under the
// console session id.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	res, err := s.api.Login(ctx, username, input.Password)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.sessions.Save(ctx, input.SessionID, res.Admin); err != nil {
		// the upstream cookie still lets the next request rehydrate
		s.log.Warn().Err(err).Str("session_id", input.SessionID).Msg("persist admin failed")
	}

	s.activity.Record(ctx, res.Admin, models.ActivityLogin, "", "signed in")

	return LoginResult{
		Session:     session.Authenticated(res.Admin),
		Credentials: res.Credentials,
	}, nil
}

// Logout forgets the console session. The remote API has no logout endpoint,
// so its cookie is simply dropped by the caller.
func (s *AuthService) Logout(ctx context.Context, sessionID string, admin *models.Admin) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	if admin != nil {
		s.activity.Record(ctx, *admin, models.ActivityLogout, "", "signed out")
	}
	return nil
}
