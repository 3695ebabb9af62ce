package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/config"
	"estateadmin/console/internal/guard"
	"estateadmin/console/internal/middleware"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/screen"
	"estateadmin/console/internal/service"
	"estateadmin/console/internal/session"
)

// API is the part of the remote real-estate API the screens use.
type API interface {
	ListBuilders(ctx context.Context) ([]models.Builder, error)
	CreateBuilder(ctx context.Context, input apiclient.CreateBuilderInput) error
	ListProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (models.Property, error)
	CreateProperty(ctx context.Context, input apiclient.PropertyInput) error
	UpdateProperty(ctx context.Context, id string, input apiclient.PropertyInput) error
	DeleteProperty(ctx context.Context, id string) error
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
}

// HealthCheck reports whether one backing service answers.
type HealthCheck func(ctx context.Context) error

type Dependencies struct {
	Log       zerolog.Logger
	Config    *config.AppConfig
	API       API
	Auth      *service.AuthService
	Uploads   *service.UploadService
	Activity  *service.ActivityService
	Snapshots *screen.Snapshots[models.Property]
	Checks    map[string]HealthCheck
}

type HandlerSet struct {
	log        zerolog.Logger
	cfg        *config.AppConfig
	api        API
	auth       *service.AuthService
	uploads    *service.UploadService
	activity   *service.ActivityService
	properties *screen.Snapshots[models.Property]
	checks     map[string]HealthCheck
}

func NewHandlerSet(deps Dependencies) HandlerSet {
	return HandlerSet{
		log:        deps.Log,
		cfg:        deps.Config,
		api:        deps.API,
		auth:       deps.Auth,
		uploads:    deps.Uploads,
		activity:   deps.Activity,
		properties: deps.Snapshots,
		checks:     deps.Checks,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.GET(guard.PathRoot, h.Root)
	router.GET(guard.PathLogin, h.LoginPage)
	router.POST(guard.PathLogin, h.Login)
	router.POST(guard.PathLogout, h.Logout)

	router.GET(guard.PathDashboard, h.Dashboard)

	router.GET(guard.PathBuilder, h.BuilderPage)
	router.POST(guard.PathBuilder, h.CreateBuilder)

	router.GET(guard.PathAddProperty, h.AddPropertyPage)
	router.POST(guard.PathAddProperty, h.CreateProperty)

	router.GET(guard.PathProperties, h.Properties)
	router.POST(guard.PathProperties, h.PropertyAction)

	router.GET(guard.PathEditProperty+":id", h.EditPropertyPage)
	router.POST(guard.PathEditProperty+":id", h.UpdateProperty)

	router.GET(guard.PathSchedule, h.Schedules)
}

// page is what every template receives.
type page struct {
	Title     string
	Active    string
	Admin     *models.Admin
	CSRF      string
	Notices   []session.Flash
	Message   string
	RequestID string
	Data      any
}

func (p page) notice(kind session.FlashKind, message string) page {
	p.Notices = append(p.Notices, session.Flash{Kind: kind, Message: message})
	return p
}

func (h HandlerSet) render(c *gin.Context, status int, name string, p page) {
	if current := session.FromContext(c).Current(); current.Authorized {
		p.Admin = current.Admin
	}
	p.CSRF = middleware.CSRFToken(c)
	p.RequestID = middleware.GetRequestID(c)

	if cookie := session.CookieFromContext(c); cookie != nil {
		if flashes := cookie.Flashes(); len(flashes) > 0 {
			p.Notices = append(flashes, p.Notices...)
			h.saveCookie(c, cookie)
		}
	}

	c.HTML(status, name, p)
}

// redirect ends a form submit. 303 turns the browser's next request into a GET.
func (h HandlerSet) redirect(c *gin.Context, to string) {
	if cookie := session.CookieFromContext(c); cookie != nil {
		h.saveCookie(c, cookie)
	}
	c.Redirect(http.StatusSeeOther, to)
}

// flash queues a notice for the next rendered page.
func (h HandlerSet) flash(c *gin.Context, kind session.FlashKind, message string) {
	if cookie := session.CookieFromContext(c); cookie != nil {
		cookie.AddFlash(kind, message)
	}
}

func (h HandlerSet) saveCookie(c *gin.Context, cookie *session.Cookie) {
	if err := cookie.Save(c.Request, c.Writer); err != nil {
		h.logger(c).Warn().Err(err).Msg("session cookie save failed")
	}
}

// logger prefers the request-scoped logger bound by middleware.RequestID.
func (h HandlerSet) logger(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.log
}

// admin is the signed-in identity. The guard guarantees one on protected
// screens; the zero value is only seen by tests that skip the middleware.
func admin(c *gin.Context) models.Admin {
	if current := session.FromContext(c).Current(); current.Admin != nil {
		return *current.Admin
	}
	return models.Admin{}
}

// failureStatus maps an upstream error onto the status of the re-rendered
// form: client errors reported by the API are the administrator's to fix.
func failureStatus(err error) int {
	if apiErr, ok := apiclient.AsError(err); ok && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

// NoRoute only sees public paths the router does not serve; every other
// unknown path is redirected by the guard first.
func (h HandlerSet) NoRoute(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", page{
		Title:   "Not found",
		Message: "There is nothing at this address.",
	})
}
