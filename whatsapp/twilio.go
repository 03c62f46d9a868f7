package whatsapp

import (
	"fmt"
	"strings"

	"github.com/zayi-14/german-school/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers through the Twilio WhatsApp API.
type TwilioSender struct {
	from   string
	client *twilio.RestClient
}

func NewTwilioSender(cfg *config.Config) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &TwilioSender{
		from:   cfg.TwilioWhatsAppFrom,
		client: client,
	}
}

func (s *TwilioSender) Name() string { return "twilio" }

// Send creates a message through Twilio. Accepted = non-empty message SID.
func (s *TwilioSender) Send(to, body string) (bool, error) {
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return false, err
	}
	if resp.Sid == nil || *resp.Sid == "" {
		return false, fmt.Errorf("twilio returned no message sid")
	}

	return true, nil
}
