package emailapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

const DefaultURL = "https://api.emailjs.com/api/v1.0/email/send"

// Client delivers notifications through a hosted transactional email API.
type Client struct {
	url         string
	serviceID   string
	publicKey   string
	accessToken string
	httpClient  *http.Client
	onError     func(service string)
}

func NewClient(url, serviceID, publicKey, accessToken string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:         url,
		serviceID:   serviceID,
		publicKey:   publicKey,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// WithHTTPClient swaps the underlying client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// OnError registers a hook called with the service name on every failed send.
func (c *Client) OnError(fn func(service string)) *Client {
	c.onError = fn
	return c
}

func (c *Client) Notify(ctx context.Context, n usecase.Notification) error {
	if c.serviceID == "" || c.publicKey == "" {
		c.failed()
		return fmt.Errorf("email api not configured")
	}

	params := make(map[string]string, len(n.Fields)+1)
	for k, v := range n.Fields {
		params[k] = v
	}
	params["to_email"] = n.Recipient

	payload, err := json.Marshal(SendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     n.TemplateID,
		UserID:         c.publicKey,
		AccessToken:    c.accessToken,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("encode email api request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email api request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.failed()
		return fmt.Errorf("email api request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.failed()
		return fmt.Errorf("email api returned %d: %s", resp.StatusCode, string(body))
	}

	log.Printf("[MAIL] email api accepted template %s for %s", n.TemplateID, n.Recipient)
	return nil
}

func (c *Client) failed() {
	if c.onError != nil {
		c.onError("emailapi")
	}
}
