package session

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/ids"
)

const (
	valueSessionID   = "sid"
	valueCredentials = "upstream"
)

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

type Flash struct {
	Kind    FlashKind
	Message string
}

// CookieJar reads and writes the signed, encrypted browser cookie that binds a
// browser to its console session.
type CookieJar struct {
	store sessions.Store
	name  string
}

func NewCookieJar(name string, ttl time.Duration, secure bool, hashKey, blockKey []byte) *CookieJar {
	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieJar{store: store, name: name}
}

// Open never fails: an unreadable cookie is replaced by a fresh one.
func (j *CookieJar) Open(r *http.Request) *Cookie {
	raw, err := j.store.Get(r, j.name)
	if err != nil {
		raw, _ = j.store.New(r, j.name)
	}
	return &Cookie{raw: raw}
}

type Cookie struct {
	raw *sessions.Session
}

func (c *Cookie) ID() string {
	id, _ := c.raw.Values[valueSessionID].(string)
	return id
}

// EnsureID assigns a console session id on first use.
func (c *Cookie) EnsureID() string {
	if id := c.ID(); id != "" {
		return id
	}
	id := ids.New()
	c.raw.Values[valueSessionID] = id
	return id
}

func (c *Cookie) Credentials() apiclient.Credentials {
	raw, _ := c.raw.Values[valueCredentials].(string)
	if raw == "" {
		return nil
	}
	var pairs map[string]string
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil
	}
	return apiclient.CredentialsFromPairs(pairs)
}

func (c *Cookie) SetCredentials(creds apiclient.Credentials) {
	pairs := creds.Pairs()
	if len(pairs) == 0 {
		delete(c.raw.Values, valueCredentials)
		return
	}
	raw, _ := json.Marshal(pairs)
	c.raw.Values[valueCredentials] = string(raw)
}

func (c *Cookie) AddFlash(kind FlashKind, message string) {
	c.raw.AddFlash(string(kind) + ":" + message)
}

// Flashes drains pending notices. The cookie must be saved afterwards.
func (c *Cookie) Flashes() []Flash {
	raw := c.raw.Flashes()
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(s, ":")
		if !found {
			out = append(out, Flash{Kind: FlashSuccess, Message: s})
			continue
		}
		out = append(out, Flash{Kind: FlashKind(kind), Message: msg})
	}
	return out
}

// Reset drops identity and upstream cookies but keeps pending flashes.
func (c *Cookie) Reset() {
	delete(c.raw.Values, valueSessionID)
	delete(c.raw.Values, valueCredentials)
}

// Rotate binds the cookie to a new console session id, dropping the upstream
// cookies of the old one.
func (c *Cookie) Rotate(id string) {
	c.Reset()
	c.raw.Values[valueSessionID] = id
}

func (c *Cookie) Save(r *http.Request, w http.ResponseWriter) error {
	return c.raw.Save(r, w)
}
