package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estateadmin/console/internal/models"
	"estateadmin/console/internal/session"
)

var protectedPaths = []string{
	"/dashboard",
	"/builder",
	"/add-property",
	"/properties",
	"/edit-property/65f1c0ffee",
	"/schedule",
	"/logout",
	"/properties/",
}

func TestProtectedPathsRedirectAnonymousToLogin(t *testing.T) {
	for _, path := range protectedPaths {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, Decision{Redirect: PathLogin}, Resolve(path, false))
			assert.False(t, CanAccess(path, session.Anonymous()))
		})
	}
}

func TestProtectedPathsRenderWhenAuthorized(t *testing.T) {
	s := session.Authenticated(models.Admin{ID: "a1"})
	for _, path := range protectedPaths {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, Decision{Render: true}, Resolve(path, true))
			assert.True(t, CanAccess(path, s))
		})
	}
}

func TestLoginForwardsWhenAuthorized(t *testing.T) {
	assert.Equal(t, Decision{Redirect: PathDashboard}, Resolve("/login", true))
	assert.Equal(t, Decision{Render: true}, Resolve("/login", false))
	assert.True(t, CanAccess("/login", session.Anonymous()))
	assert.False(t, CanAccess("/login", session.Authenticated(models.Admin{})))
}

func TestRootRedirectsOnAuthorization(t *testing.T) {
	assert.Equal(t, Decision{Redirect: PathDashboard}, Resolve("/", true))
	assert.Equal(t, Decision{Redirect: PathLogin}, Resolve("/", false))
	assert.Equal(t, Decision{Redirect: PathLogin}, Resolve("", false))
}

func TestUnknownPathsRedirectToRoot(t *testing.T) {
	for _, path := range []string{"/nope", "/edit-property", "/edit-property/", "/edit-property/a/b", "/dashboardx"} {
		for _, authorized := range []bool{true, false} {
			assert.Equal(t, Decision{Redirect: PathRoot}, Resolve(path, authorized), path)
		}
	}
}

func TestPublicInfrastructurePaths(t *testing.T) {
	for _, path := range []string{"/healthz", "/metrics", "/static/app.css"} {
		assert.Equal(t, KindPublic, Classify(path), path)
		assert.True(t, Resolve(path, false).Render, path)
	}
}

func TestRouteTableIsClassifiedConsistently(t *testing.T) {
	for _, route := range Routes {
		path := route.Pattern
		if path == PathEditProperty+":id" {
			path = PathEditProperty + "x1"
		}
		assert.Equal(t, route.Kind, Classify(path), route.Pattern)
	}
}
