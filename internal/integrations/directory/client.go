package directory

import (
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

// Client клиент справочника специалистов (внешний content-сервис)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
// timeout ограничивает весь запрос целиком, maxRedirects число редиректов
func NewClient(baseURL string, token string, timeout time.Duration, maxRedirects int, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		log: log,
	}
}

// GetProvider получает специалиста по ID через фильтрованный запрос к справочнику
// Пустой список в ответе означает ErrProviderNotFound
func (c *Client) GetProvider(ctx context.Context, id int64) (*Provider, error) {
	url := fmt.Sprintf("%s/providers?filter[id]=%d", c.baseURL, id)

	envelope, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 {
		c.log.Warn("Provider id=%d not found in directory", id)
		return nil, ErrProviderNotFound
	}

	provider := envelope.Data[0]
	return &provider, nil
}

// ListProviders получает полный список специалистов из справочника
func (c *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	url := fmt.Sprintf("%s/providers", c.baseURL)

	envelope, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (c *Client) get(ctx context.Context, url string) (*providersEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сюда попадают таймауты, сетевые ошибки и превышение числа редиректов
		c.log.Error("Directory request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("Directory returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var envelope providersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Error("Directory response decode failed: %v", err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrServiceUnavailable, err)
	}

	return &envelope, nil
}
