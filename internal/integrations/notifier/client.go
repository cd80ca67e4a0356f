package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент диспетчера уведомлений
//
// Уведомления отправляются fire-and-forget: сбой доставки логируется,
// но никогда не откатывает уже зафиксированное бронирование
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет событие жизненного цикла бронирования
func (c *Client) Notify(ctx context.Context, event Event) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// NotifyAsync отправляет событие в отдельной горутине с собственным таймаутом
// Используется сервисным слоем после успешных create/approve/reject/cancel
func (c *Client) NotifyAsync(event Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		if err := c.Notify(ctx, event); err != nil {
			c.log.Error("Notifier: failed to dispatch %s for booking id=%d: %v",
				event.Type, event.BookingID, err)
			return
		}
		c.log.Info("Notifier: dispatched %s for booking id=%d", event.Type, event.BookingID)
	}()
}

// NopClient заглушка, используемая когда диспетчер уведомлений выключен
type NopClient struct{}

// Notify ничего не делает
func (NopClient) Notify(ctx context.Context, event Event) error { return nil }

// NotifyAsync ничего не делает
func (NopClient) NotifyAsync(event Event) {}
