package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arfind/arfind_admin/logger"
)

// ResultKind tags the outcome of a REST call.
type ResultKind int

const (
	ResultFailure ResultKind = iota
	ResultEmpty
	ResultPayload
)

func (k ResultKind) String() string {
	switch k {
	case ResultPayload:
		return "payload"
	case ResultEmpty:
		return "empty"
	default:
		return "failure"
	}
}

// APIResult is the outcome of a REST call: a decoded payload, an empty
// success, or a failure with its reason.
type APIResult struct {
	Kind       ResultKind
	StatusCode int
	Body       json.RawMessage
	Reason     string
}

func (r APIResult) OK() bool {
	return r.Kind != ResultFailure
}

// Message returns the "message" field of the response body, if any.
func (r APIResult) Message() string {
	if len(r.Body) == 0 || r.Body[0] != '{' {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return ""
	}
	return body.Message
}

// Decode unmarshals the payload into v.
func (r APIResult) Decode(v interface{}) error {
	switch r.Kind {
	case ResultFailure:
		return errors.New(r.Reason)
	case ResultEmpty:
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// DecodeList unmarshals a list payload into v. The API returns either a
// bare JSON array or an object wrapping it under "data".
func (r APIResult) DecodeList(v interface{}) error {
	switch r.Kind {
	case ResultFailure:
		return errors.New(r.Reason)
	case ResultEmpty:
		return nil
	}

	if r.Body[0] == '[' {
		return json.Unmarshal(r.Body, v)
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Body, &wrapped); err != nil {
		return err
	}
	if len(wrapped.Data) == 0 || string(wrapped.Data) == "null" {
		return nil
	}
	if wrapped.Data[0] != '[' {
		return fmt.Errorf("unexpected list payload: %.80s", r.Body)
	}
	return json.Unmarshal(wrapped.Data, v)
}

func failure(status int, reason string) APIResult {
	return APIResult{Kind: ResultFailure, StatusCode: status, Reason: reason}
}

// APIClient forwards requests to the backend REST API with the caller's
// identity token.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewAPIClient(baseURL string, timeout time.Duration, log *logger.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("api_client"),
	}
}

func (c *APIClient) Get(ctx context.Context, token, endpoint string) APIResult {
	return c.makeRequest(ctx, http.MethodGet, token, endpoint, nil)
}

func (c *APIClient) Post(ctx context.Context, token, endpoint string, payload interface{}) APIResult {
	return c.makeRequest(ctx, http.MethodPost, token, endpoint, payload)
}

func (c *APIClient) Put(ctx context.Context, token, endpoint string, payload interface{}) APIResult {
	return c.makeRequest(ctx, http.MethodPut, token, endpoint, payload)
}

func (c *APIClient) Patch(ctx context.Context, token, endpoint string, payload interface{}) APIResult {
	return c.makeRequest(ctx, http.MethodPatch, token, endpoint, payload)
}

func (c *APIClient) Delete(ctx context.Context, token, endpoint string, payload interface{}) APIResult {
	return c.makeRequest(ctx, http.MethodDelete, token, endpoint, payload)
}

func (c *APIClient) makeRequest(ctx context.Context, method, token, endpoint string, payload interface{}) APIResult {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	result := c.send(ctx, method, token, url, payload)
	if !result.OK() {
		c.log.Error().
			Str("method", method).
			Str("url", url).
			Int("status", result.StatusCode).
			Str("reason", result.Reason).
			Msg("API request failed")
	} else {
		c.log.Debug().
			Str("method", method).
			Str("url", url).
			Int("status", result.StatusCode).
			Str("result", result.Kind.String()).
			Msg("API request")
	}
	return result
}

func (c *APIClient) send(ctx context.Context, method, token, url string, payload interface{}) APIResult {
	if token == "" {
		return failure(0, "missing identity token")
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return failure(0, fmt.Sprintf("failed to marshal request: %v", err))
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return failure(0, fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(0, fmt.Sprintf("failed to send request: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(resp.StatusCode, fmt.Sprintf("failed to read response: %v", err))
	}
	respBody = bytes.TrimSpace(respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r := failure(resp.StatusCode, fmt.Sprintf("unexpected status %d", resp.StatusCode))
		r.Body = respBody
		if msg := r.Message(); msg != "" {
			r.Reason = msg
		}
		return r
	}

	if len(respBody) == 0 || string(respBody) == "null" {
		return APIResult{Kind: ResultEmpty, StatusCode: resp.StatusCode}
	}
	if !json.Valid(respBody) {
		return failure(resp.StatusCode, "failed to decode response body")
	}
	return APIResult{Kind: ResultPayload, StatusCode: resp.StatusCode, Body: respBody}
}
