package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// Client клиент платёжного провайдера для оформления членства
type Client struct {
	baseURL    string
	apiKey     string
	successURL string
	cancelURL  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр платёжного клиента
func NewClient(baseURL, apiKey, successURL, cancelURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateSession создает платёжную сессию и возвращает URL страницы оплаты
func (c *Client) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	c.log.Info("Creating checkout session for tier=%s, email=%s", req.TierID, req.CustomerEmail)

	payload := sessionPayload{
		Reference:     req.TierID,
		Description:   req.TierName,
		AmountCents:   int64(math.Round(req.AmountEUR * 100)),
		Currency:      "EUR",
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    c.successURL,
		CancelURL:     c.cancelURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Successfully created checkout session id=%s for tier=%s", session.ID, req.TierID)
	return &session, nil
}
