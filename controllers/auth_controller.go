package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/middleware"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/repositories"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
)

const (
	msgLoginOK       = "Inicio de sesión exitoso"
	msgLoginFailed   = "Error durante el inicio de sesión. Intente nuevamente."
	msgEmployeeUnset = "Empleado no encontrado en Firestore"
)

// AuthController handles login and logout of panel employees
type AuthController struct {
	identity  services.IdentityProvider
	employees *repositories.EmployeeRepository
	sessions  utils.SessionStore
	cookie    middleware.SessionCookie
	log       *logger.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(identity services.IdentityProvider, employees *repositories.EmployeeRepository, sessions utils.SessionStore, cookie middleware.SessionCookie, log *logger.Logger) *AuthController {
	return &AuthController{
		identity:  identity,
		employees: employees,
		sessions:  sessions,
		cookie:    cookie,
		log:       log.Named("auth"),
	}
}

// ShowLogin renders the login page
func (ac *AuthController) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login", nil)
}

// Login exchanges the credentials with the identity provider and opens a
// session for the matching employee
func (ac *AuthController) Login(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var form models.LoginForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusUnauthorized, models.LoginResponse{Message: msgLoginFailed})
	}
	email := strings.TrimSpace(form.Username)
	if email == "" || form.Password == "" {
		return c.JSON(http.StatusUnauthorized, models.LoginResponse{Message: msgLoginFailed})
	}

	identity, err := ac.identity.SignIn(ctx, email, form.Password)
	if err != nil {
		ac.log.Warn().Err(err).Str("email", email).Msg("Sign in rejected")
		return c.JSON(http.StatusUnauthorized, models.LoginResponse{Message: msgLoginFailed})
	}

	employee, err := ac.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ac.log.Warn().Str("email", email).Msg("Signed in user is not an employee")
			return c.JSON(http.StatusNotFound, models.LoginResponse{Message: msgEmployeeUnset})
		}
		ac.log.Error().Err(err).Str("email", email).Msg("Failed to look up employee")
		return c.JSON(http.StatusUnauthorized, models.LoginResponse{Message: msgLoginFailed})
	}

	session := &models.Session{
		ID:           utils.NewSessionID(),
		Token:        identity.IDToken,
		UID:          identity.UID,
		EmployeeName: employee.Nombre,
		IsAdmin:      employee.IsAdmin,
		CreatedAt:    time.Now(),
	}
	if err := ac.sessions.Save(ctx, session); err != nil {
		ac.log.Error().Err(err).Msg("Failed to store session")
		return c.JSON(http.StatusUnauthorized, models.LoginResponse{Message: msgLoginFailed})
	}
	ac.cookie.WriteCookie(c, session.ID)

	ac.log.Info().Str("uid", identity.UID).Bool("admin", employee.IsAdmin).Msg("Employee logged in")
	return c.JSON(http.StatusOK, models.LoginResponse{Message: msgLoginOK, IDToken: identity.IDToken})
}

// Logout clears the session and returns to the login page
func (ac *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(ac.cookie.Name); err == nil && cookie.Value != "" {
		if err := ac.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			ac.log.Error().Err(err).Msg("Failed to delete session")
		}
	}
	ac.cookie.ClearCookie(c)
	return c.Redirect(http.StatusFound, "/")
}
