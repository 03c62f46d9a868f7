package whatsapp

import (
	"fmt"
	"time"

	"github.com/zayi-14/german-school/config"

	"github.com/go-resty/resty/v2"
)

// MetaSender delivers through the Meta WhatsApp Cloud API.
type MetaSender struct {
	apiBase       string
	phoneNumberID string
	accessToken   string
	client        *resty.Client
}

// NewMetaSender builds a Cloud API sender. The short client timeout keeps
// an unreachable provider from stalling the registration response.
func NewMetaSender(cfg *config.Config) *MetaSender {
	return &MetaSender{
		apiBase:       cfg.WhatsAppApiBase,
		phoneNumberID: cfg.WhatsAppPhoneNumberID,
		accessToken:   cfg.WhatsAppAccessToken,
		client:        resty.New().SetTimeout(5 * time.Second),
	}
}

func (s *MetaSender) Name() string { return "meta" }

// Send posts a text message to the Cloud API. Accepted = HTTP 200/201.
func (s *MetaSender) Send(to, body string) (bool, error) {
	url := fmt.Sprintf("%s/%s/messages", s.apiBase, s.phoneNumberID)

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}

	resp, err := s.client.R().
		SetAuthToken(s.accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return false, err
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return false, fmt.Errorf("cloud api returned %d: %s", resp.StatusCode(), resp.String())
	}

	return true, nil
}
