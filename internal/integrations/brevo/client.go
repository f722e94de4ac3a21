package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с Brevo (контакты и транзакционные письма)
type Client struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	listIDs     []int64
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента Brevo
func NewClient(baseURL, apiKey, senderName, senderEmail string, listIDs []int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		listIDs:     listIDs,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateContact создает или обновляет контакт в списках рассылки
func (c *Client) CreateContact(ctx context.Context, email, name string) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	payload := contactRequest{
		Email:         email,
		Attributes:    map[string]string{"FIRSTNAME": name},
		ListIDs:       c.listIDs,
		UpdateEnabled: true,
	}

	// 201 - контакт создан, 204 - контакт обновлен
	return c.post(ctx, "/v3/contacts", payload, http.StatusCreated, http.StatusNoContent)
}

// SendBookingConfirmation отправляет письмо-подтверждение бронирования
func (c *Client) SendBookingConfirmation(ctx context.Context, confirmation *BookingConfirmation) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	payload := emailRequest{
		Sender: emailAddress{Name: c.senderName, Email: c.senderEmail},
		To:     []emailAddress{{Name: confirmation.Name, Email: confirmation.Email}},
		Subject: fmt.Sprintf("Your %s is confirmed for %s at %s",
			confirmation.SessionName, confirmation.Date, confirmation.StartTime),
		HTMLContent: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your <b>%s</b> (%d min) is confirmed for <b>%s</b> at <b>%s</b>.</p><p>See you there!</p>",
			confirmation.Name, confirmation.SessionName, confirmation.DurationMinutes,
			confirmation.Date, confirmation.StartTime),
	}

	return c.post(ctx, "/v3/smtp/email", payload, http.StatusCreated, http.StatusAccepted)
}

// SyncContactWithGracefulDegradation создает контакт с graceful degradation
// При недоступности Brevo возвращает ErrServiceDegraded: бронирование и
// членство не должны зависеть от доступности email-провайдера
func (c *Client) SyncContactWithGracefulDegradation(ctx context.Context, email, name string) error {
	c.log.Info("Syncing contact email=%s", email)

	if err := c.CreateContact(ctx, email, name); err != nil {
		c.log.Error("Brevo unavailable, applying graceful degradation for email=%s: %v", email, err)
		return fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, email, err)
	}

	c.log.Info("Successfully synced contact email=%s", email)
	return nil
}

// SendBookingConfirmationWithGracefulDegradation отправляет подтверждение с graceful degradation
func (c *Client) SendBookingConfirmationWithGracefulDegradation(ctx context.Context, confirmation *BookingConfirmation) error {
	c.log.Info("Sending booking confirmation to email=%s", confirmation.Email)

	if err := c.SendBookingConfirmation(ctx, confirmation); err != nil {
		c.log.Error("Brevo unavailable, applying graceful degradation for email=%s: %v", confirmation.Email, err)
		return fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, confirmation.Email, err)
	}

	c.log.Info("Successfully sent booking confirmation to email=%s", confirmation.Email)
	return nil
}

// post выполняет POST запрос к Brevo API и проверяет статус-код ответа
func (c *Client) post(ctx context.Context, path string, payload interface{}, okStatuses ...int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	for _, status := range okStatuses {
		if resp.StatusCode == status {
			return nil
		}
	}

	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
}
