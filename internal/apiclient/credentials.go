package apiclient

import (
	"context"
	"net/http"
)

type credentialsKey struct{}

// Credentials are the cookies the remote API set on login. They are replayed
// on every call, the server-side equivalent of a browser's
// credentials-included fetch.
type Credentials []*http.Cookie

func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

func CredentialsFrom(ctx context.Context) Credentials {
	creds, _ := ctx.Value(credentialsKey{}).(Credentials)
	return creds
}

// Pairs flattens the cookies to name/value pairs for persistence.
func (c Credentials) Pairs() map[string]string {
	out := make(map[string]string, len(c))
	for _, cookie := range c {
		if cookie == nil || cookie.Name == "" {
			continue
		}
		out[cookie.Name] = cookie.Value
	}
	return out
}

func CredentialsFromPairs(pairs map[string]string) Credentials {
	if len(pairs) == 0 {
		return nil
	}
	out := make(Credentials, 0, len(pairs))
	for name, value := range pairs {
		out = append(out, &http.Cookie{Name: name, Value: value})
	}
	return out
}
