// Package guard decides, from the request path and the authorization flag
// alone, whether a screen renders or the browser is redirected.
package guard

import (
	"strings"

	"estateadmin/console/internal/session"
)

const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathDashboard    = "/dashboard"
	PathBuilder      = "/builder"
	PathAddProperty  = "/add-property"
	PathProperties   = "/properties"
	PathEditProperty = "/edit-property/"
	PathSchedule     = "/schedule"
	PathLogout       = "/logout"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindRoot
	KindLogin
	KindProtected
	KindPublic
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindLogin:
		return "login"
	case KindProtected:
		return "protected"
	case KindPublic:
		return "public"
	default:
		return "unknown"
	}
}

// Route is one entry of the console's route table.
type Route struct {
	Pattern string
	Kind    Kind
}

var Routes = []Route{
	{PathLogin, KindLogin},
	{PathDashboard, KindProtected},
	{PathBuilder, KindProtected},
	{PathAddProperty, KindProtected},
	{PathProperties, KindProtected},
	{PathEditProperty + ":id", KindProtected},
	{PathSchedule, KindProtected},
	{PathLogout, KindProtected},
	{PathRoot, KindRoot},
}

var protectedExact = map[string]struct{}{
	PathDashboard:   {},
	PathBuilder:     {},
	PathAddProperty: {},
	PathProperties:  {},
	PathSchedule:    {},
	PathLogout:      {},
}

var publicPrefixes = []string{"/static/"}

var publicExact = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// Classify maps a request path onto the route table.
func Classify(path string) Kind {
	if path == "" {
		path = PathRoot
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	switch path {
	case PathRoot:
		return KindRoot
	case PathLogin:
		return KindLogin
	}
	if _, ok := protectedExact[path]; ok {
		return KindProtected
	}
	if id, ok := strings.CutPrefix(path, PathEditProperty); ok && id != "" && !strings.Contains(id, "/") {
		return KindProtected
	}
	if _, ok := publicExact[path]; ok {
		return KindPublic
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return KindPublic
		}
	}
	return KindUnknown
}

// Decision is either render the target or redirect to Redirect.
type Decision struct {
	Render   bool
	Redirect string
}

func render() Decision            { return Decision{Render: true} }
func redirect(to string) Decision { return Decision{Redirect: to} }

func Resolve(path string, authorized bool) Decision {
	switch Classify(path) {
	case KindPublic:
		return render()
	case KindProtected:
		if authorized {
			return render()
		}
		return redirect(PathLogin)
	case KindLogin:
		if authorized {
			return redirect(PathDashboard)
		}
		return render()
	case KindRoot:
		if authorized {
			return redirect(PathDashboard)
		}
		return redirect(PathLogin)
	default:
		return redirect(PathRoot)
	}
}

// CanAccess reports whether the screen at path renders for s.
func CanAccess(path string, s session.Session) bool {
	return Resolve(path, s.Authorized).Render
}
