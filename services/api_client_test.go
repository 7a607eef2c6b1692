package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfind/arfind_admin/logger"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	CType  string
	Body   map[string]interface{}
}

func newTestAPI(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*APIClient, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			CType:  r.Header.Get("Content-Type"),
		}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		seen = append(seen, rec)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewAPIClient(srv.URL+"/", 5*time.Second, logger.Nop()), &seen
}

func TestAPIClient_SendsBearerTokenAndJSON(t *testing.T) {
	client, seen := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Plan creado con éxito"}`))
	})

	res := client.Post(context.Background(), "tok-1", "planes/createPlan", map[string]interface{}{"nombre": "Basico"})

	require.True(t, res.OK())
	assert.Equal(t, ResultPayload, res.Kind)
	assert.Equal(t, "Plan creado con éxito", res.Message())

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/planes/createPlan", req.Path)
	assert.Equal(t, "Bearer tok-1", req.Auth)
	assert.Equal(t, "application/json", req.CType)
	assert.Equal(t, "Basico", req.Body["nombre"])
}

func TestAPIClient_MissingTokenNeverCallsServer(t *testing.T) {
	client, seen := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {})

	res := client.Get(context.Background(), "", "planes/getPlanes")

	assert.False(t, res.OK())
	assert.Equal(t, ResultFailure, res.Kind)
	assert.Empty(t, *seen)
}

func TestAPIClient_Non2xxIsFailure(t *testing.T) {
	client, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Datos inválidos"}`))
	})

	res := client.Put(context.Background(), "tok", "planes/updatePlan", map[string]string{"id": "p1"})

	assert.Equal(t, ResultFailure, res.Kind)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Datos inválidos", res.Reason)
}

func TestAPIClient_EmptyBodyIsEmptyResult(t *testing.T) {
	client, seen := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	res := client.Delete(context.Background(), "tok", "/planes/deletePlan", map[string]string{"id": "p1"})

	assert.Equal(t, ResultEmpty, res.Kind)
	assert.True(t, res.OK())
	assert.Equal(t, http.MethodDelete, (*seen)[0].Method)
	assert.Equal(t, "p1", (*seen)[0].Body["id"])
}

func TestAPIClient_InvalidJSONIsFailure(t *testing.T) {
	client, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	res := client.Patch(context.Background(), "tok", "productos/productos/1", map[string]string{"titulo": "x"})
	assert.Equal(t, ResultFailure, res.Kind)
}

func TestAPIResult_DecodeList(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}

	var bare []item
	require.NoError(t, APIResult{Kind: ResultPayload, Body: []byte(`[{"id":"a"},{"id":"b"}]`)}.DecodeList(&bare))
	assert.Len(t, bare, 2)

	var wrapped []item
	require.NoError(t, APIResult{Kind: ResultPayload, Body: []byte(`{"data":[{"id":"c"}]}`)}.DecodeList(&wrapped))
	assert.Equal(t, []item{{ID: "c"}}, wrapped)

	var none []item
	require.NoError(t, APIResult{Kind: ResultEmpty}.DecodeList(&none))
	assert.Empty(t, none)

	var bad []item
	assert.Error(t, APIResult{Kind: ResultPayload, Body: []byte(`{"data":{"id":"x"}}`)}.DecodeList(&bad))
	assert.Error(t, APIResult{Kind: ResultFailure, Reason: "boom"}.DecodeList(&bad))
}
