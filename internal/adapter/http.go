package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/utils"
	"github.com/ndanilov/shelf-viewer/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the sign-up payload to
// POST /api/auth/sign-up, decodes the issued token, and stores it via
// SetToken. Returns an error if the request fails or the server rejects the
// payload.
func (h *httpServerAdapter) SignUp(ctx context.Context, signUp models.SignUpRequest) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signUp).
		Post("/api/auth/sign-up")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("sign-up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return h.rememberToken(resp.Body())
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/sign-in, decodes the issued token, and stores it via
// SetToken.
func (h *httpServerAdapter) SignIn(ctx context.Context, signIn models.SignInRequest) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signIn).
		Post("/api/auth/sign-in")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("sign-in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return h.rememberToken(resp.Body())
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserProfile, error) {
	resp, err := h.authorizedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("me decode response: %w", err)
	}

	return profile, nil
}

// Documents implements [ServerAdapter].
func (h *httpServerAdapter) Documents(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	resp, err := h.authorizedRequest(ctx).
		SetBody(models.DocumentsRequest{DB: string(collection)}).
		Post("/api/database/")
	if err != nil {
		return nil, fmt.Errorf("documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var documents []models.Document
	if err = json.Unmarshal(resp.Body(), &documents); err != nil {
		return nil, fmt.Errorf("documents decode response: %w", err)
	}

	for i := range documents {
		documents[i].Collection = collection
	}

	return documents, nil
}

// UpdateDatabase implements [ServerAdapter].
func (h *httpServerAdapter) UpdateDatabase(ctx context.Context, collection models.Collection, page string) error {
	resp, err := h.authorizedRequest(ctx).
		SetBody(models.RefreshRequest{DB: string(collection), Page: page}).
		Post("/api/database/update")
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authorizedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.token)
}

func (h *httpServerAdapter) rememberToken(body []byte) (models.TokenResponse, error) {
	var token models.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}

	h.SetToken(token.AccessToken)
	return token, nil
}
