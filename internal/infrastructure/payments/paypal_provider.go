package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/infrastructure/config"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
var ErrEmptyAccessToken = errors.New("provider returned an empty access token")

// PayPalProvider talks to the provider's sandbox REST API. Each method issues
// exactly one HTTP call; token acquisition is a separate call made fresh by
// the usecase before every operation, never cached here.

type PayPalProvider struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

var _ interfaces.IPaymentProvider = (*PayPalProvider)(nil)

func NewPayPalProvider(cfg *config.Config) *PayPalProvider {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Printf("[checkout][provider] missing PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET; token requests will fail")
	}
	return &PayPalProvider{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// GenerateAccessToken posts a client-credentials grant using Basic auth built
// from the two configured credential strings.
func (p *PayPalProvider) GenerateAccessToken(ctx context.Context) (string, error) {
	if p.clientID == "" || p.clientSecret == "" {
		log.Printf("[checkout][provider] access token request skipped: credentials not configured")
		return "", ErrMissingPayPalCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/oauth2/token", strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(p.clientID, p.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[checkout][provider] access token request failed err=%v", err)
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	defer resp.Body.Close()

	result, err := normalizeResponse(resp)
	if err != nil {
		log.Printf("[checkout][provider] access token response not json err=%v", err)
		return "", err
	}

	var tokenResp accessTokenResponse
	if err := json.Unmarshal(result.Body, &tokenResp); err != nil {
		log.Printf("[checkout][provider] access token unmarshal failed err=%v", err)
		return "", fmt.Errorf("failed to parse access token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		log.Printf("[checkout][provider] access token missing in response status=%d", result.StatusCode)
		return "", ErrEmptyAccessToken
	}

	return tokenResp.AccessToken, nil
}

// GenerateClientToken requests a browser-rendering token for the checkout UI.
func (p *PayPalProvider) GenerateClientToken(ctx context.Context, accessToken string) (entities.ProviderResult, error) {
	log.Printf("[checkout][provider] client token start")
	return p.post(ctx, accessToken, "/v1/identity/generate-token", nil, nil)
}

// CreateOrder submits an order with the fixed amount. The PayPal-Request-Id
// header lets the provider de-duplicate accidental resubmissions.
func (p *PayPalProvider) CreateOrder(ctx context.Context, accessToken string, order entities.OrderRequest) (entities.ProviderResult, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return entities.ProviderResult{}, fmt.Errorf("failed to marshal order request: %w", err)
	}
	log.Printf("[checkout][provider] create order start intent=%s", order.Intent)
	headers := map[string]string{"PayPal-Request-Id": uuid.NewString()}
	return p.post(ctx, accessToken, "/v2/checkout/orders", body, headers)
}

// CaptureOrder finalizes payment collection for an order.
func (p *PayPalProvider) CaptureOrder(ctx context.Context, accessToken, orderID string) (entities.ProviderResult, error) {
	log.Printf("[checkout][provider] capture order start order_id=%s", orderID)
	return p.post(ctx, accessToken, "/v2/checkout/orders/"+orderID+"/capture", nil, nil)
}

// AuthorizeOrder reserves payment for an order without capturing it.
func (p *PayPalProvider) AuthorizeOrder(ctx context.Context, accessToken, orderID string) (entities.ProviderResult, error) {
	log.Printf("[checkout][provider] authorize order start order_id=%s", orderID)
	return p.post(ctx, accessToken, "/v2/checkout/orders/"+orderID+"/authorize", nil, nil)
}

// CaptureAuthorization captures a previously authorized payment.
func (p *PayPalProvider) CaptureAuthorization(ctx context.Context, accessToken, authorizationID string) (entities.ProviderResult, error) {
	log.Printf("[checkout][provider] capture authorization start authorization_id=%s", authorizationID)
	return p.post(ctx, accessToken, "/v2/payments/authorizations/"+authorizationID+"/capture", nil, nil)
}

func (p *PayPalProvider) post(ctx context.Context, accessToken, path string, body []byte, headers map[string]string) (entities.ProviderResult, error) {
	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(string(body))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, reader)
	if err != nil {
		return entities.ProviderResult{}, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[checkout][provider] request failed path=%s err=%v", path, err)
		return entities.ProviderResult{}, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	result, err := normalizeResponse(resp)
	if err != nil {
		log.Printf("[checkout][provider] response not json path=%s status=%d err=%v", path, resp.StatusCode, err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[checkout][provider] request success path=%s status=%d body_len=%d", path, result.StatusCode, len(result.Body))

	return result, nil
}

// normalizeResponse reads the upstream body and returns it with the upstream
// status when it is valid JSON. A non-JSON body is a failure carrying the raw
// text, so callers can log what the provider actually sent.
func normalizeResponse(resp *http.Response) (entities.ProviderResult, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.ProviderResult{}, fmt.Errorf("failed to read provider response: %w", err)
	}
	if !json.Valid(raw) {
		return entities.ProviderResult{}, fmt.Errorf("provider returned non-json body (status %d): %s", resp.StatusCode, string(raw))
	}
	return entities.ProviderResult{StatusCode: resp.StatusCode, Body: raw}, nil
}
