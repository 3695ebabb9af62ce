// Package session holds the console's view of who is signed in.
package session

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/models"
)

var ErrNoAdmin = errors.New("session: authorized requires an admin identity")

// Session is an immutable snapshot. Authorized implies Admin != nil.
type Session struct {
	Authorized bool
	Admin      *models.Admin
}

func Anonymous() Session {
	return Session{}
}

func Authenticated(admin models.Admin) Session {
	return Session{Authorized: true, Admin: &admin}
}

func (s Session) Valid() bool {
	return !s.Authorized || s.Admin != nil
}

// Holder is the per-request session, passed to handlers through the gin
// context. Writes come from login, logout and hydration only.
type Holder struct {
	mu      sync.RWMutex
	id      string
	current Session
}

func NewHolder(id string, s Session) *Holder {
	if !s.Valid() {
		s = Anonymous()
	}
	return &Holder{id: id, current: s}
}

// ID is the console session id the persisted record is keyed by.
func (h *Holder) ID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.id
}

func (h *Holder) SetID(id string) {
	h.mu.Lock()
	h.id = id
	h.mu.Unlock()
}

func (h *Holder) Current() Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

func (h *Holder) Authorized() bool {
	return h.Current().Authorized
}

func (h *Holder) SetAuthorized(authorized bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if authorized && h.current.Admin == nil {
		return ErrNoAdmin
	}
	h.current.Authorized = authorized
	return nil
}

// SetAdmin replaces the identity. A nil admin also drops authorization.
func (h *Holder) SetAdmin(admin *models.Admin) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if admin == nil {
		h.current = Anonymous()
		return
	}
	cp := *admin
	h.current.Admin = &cp
}

func (h *Holder) Clear() {
	h.mu.Lock()
	h.current = Anonymous()
	h.mu.Unlock()
}

const contextKey = "console_session"

func Attach(c *gin.Context, h *Holder) {
	c.Set(contextKey, h)
}

// FromContext returns the request's holder, or an anonymous one when no
// middleware attached it.
func FromContext(c *gin.Context) *Holder {
	if v, ok := c.Get(contextKey); ok {
		if h, ok := v.(*Holder); ok {
			return h
		}
	}
	return NewHolder("", Anonymous())
}

const cookieContextKey = "console_cookie"

func AttachCookie(c *gin.Context, cookie *Cookie) {
	c.Set(cookieContextKey, cookie)
}

// CookieFromContext returns nil when no session middleware ran.
func CookieFromContext(c *gin.Context) *Cookie {
	if v, ok := c.Get(cookieContextKey); ok {
		if cookie, ok := v.(*Cookie); ok {
			return cookie
		}
	}
	return nil
}
