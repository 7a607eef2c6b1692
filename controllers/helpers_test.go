package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/services"
)

func TestRedirectWithMessage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/planes/eliminar/1", nil), rec)

	assert.NoError(t, redirectWithMessage(c, "/planes", "Plan eliminado con éxito"))
	assert.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	assert.NoError(t, err)
	assert.Equal(t, "/planes", loc.Path)
	assert.Equal(t, "Plan eliminado con éxito", loc.Query().Get("mensaje"))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	assert.NoError(t, redirectWithMessage(c, "/planes", ""))
	assert.Equal(t, "/planes", rec.Header().Get(echo.HeaderLocation))
}

func TestFailureMessage(t *testing.T) {
	withMessage := services.APIResult{Kind: services.ResultFailure, Body: json.RawMessage(`{"message":"El plan ya existe"}`)}
	assert.Equal(t, "El plan ya existe", failureMessage(withMessage, "fallback"))

	bare := services.APIResult{Kind: services.ResultFailure, Reason: "unexpected status 502"}
	assert.Equal(t, "fallback", failureMessage(bare, "fallback"))
}

func TestPlanLabel(t *testing.T) {
	names := models.PlanNames([]models.Plan{{ID: "p1", Nombre: "Basico"}, {ID: "p2"}})

	assert.Equal(t, "Basico", planLabel(names, "p1"))
	assert.Equal(t, "p2", planLabel(names, "p2"))
	assert.Equal(t, "p9", planLabel(names, "p9"))
	assert.Equal(t, noPlan, planLabel(names, ""))
}

func TestSessionTokenWithoutSession(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, sessionToken(c))
}
