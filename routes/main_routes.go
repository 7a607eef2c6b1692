package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/arfind/arfind_admin/controllers"
	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/middleware"
	"github.com/arfind/arfind_admin/repositories"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
	"github.com/arfind/arfind_admin/views"
)

// Dependencies holds the clients shared by every controller. They are built
// once at startup and only read afterwards.
type Dependencies struct {
	Store       repositories.DocumentStore
	API         *services.APIClient
	Identity    services.IdentityProvider
	Images      *services.ImageService
	Sessions    utils.SessionStore
	Cookie      middleware.SessionCookie
	RateLimiter *middleware.RateLimiter
	Log         *logger.Logger
}

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewServer builds the echo instance with the middleware chain and every
// route registered.
func NewServer(deps Dependencies) (*echo.Echo, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewCustomValidator()
	e.Renderer = renderer

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = middleware.NewRateLimiter()
	}

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"https://storage.googleapis.com"},
		StyleSources:   []string{"https://cdn.jsdelivr.net"},
		AllowInlineJS:  true,
		HSTS:           deps.Cookie.Secure,
	}))
	e.Use(middleware.LoadSession(deps.Sessions, deps.Cookie.Name, deps.Log))

	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	SetupRoutes(e, deps)
	return e, nil
}

// SetupRoutes configures all panel routes by calling individual route registration functions
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	// Everything in this group requires a logged in employee
	protected := e.Group("")
	protected.Use(middleware.RequireLogin())

	RegisterAdminRoutes(protected, deps)
	RegisterOrderRoutes(protected, deps)
	RegisterProductRoutes(protected, deps)
	RegisterDeviceRoutes(protected, deps)
	RegisterSubscriptionRoutes(protected, deps)
	RegisterNotificationRoutes(protected, deps)
	RegisterFileRoutes(protected, deps)

	// Registered after the gated group, whose catch-all also covers "/"
	employees := repositories.NewEmployeeRepository(deps.Store)
	RegisterAuthRoutes(e, controllers.NewAuthController(deps.Identity, employees, deps.Sessions, deps.Cookie, deps.Log))
}
