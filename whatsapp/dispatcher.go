package whatsapp

import (
	"log"

	"github.com/zayi-14/german-school/config"
)

// Sender is one outbound WhatsApp provider.
type Sender interface {
	Name() string
	// Send delivers body to the destination number and reports whether the
	// provider accepted the message.
	Send(to, body string) (bool, error)
}

// Dispatcher picks the first configured provider and delivers owner
// notifications best-effort. Provider errors are logged and swallowed:
// a failed notification must never fail the request that triggered it.
type Dispatcher struct {
	Owner   string
	Senders []Sender
}

// Default is the process-wide dispatcher, set up in main.
var Default *Dispatcher

// NewDispatcher builds the ordered provider list from configured
// credentials: Meta Cloud API first, then Twilio. Zero providers is a
// valid state; Notify becomes a silent skip.
func NewDispatcher(cfg *config.Config) *Dispatcher {
	d := &Dispatcher{Owner: cfg.OwnerWhatsAppNumber}

	if cfg.WhatsAppAccessToken != "" && cfg.WhatsAppPhoneNumberID != "" {
		d.Senders = append(d.Senders, NewMetaSender(cfg))
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioWhatsAppFrom != "" {
		d.Senders = append(d.Senders, NewTwilioSender(cfg))
	}

	return d
}

// NotifyOwner sends body to the school owner through the preferred
// configured provider. Returns whether the message was delivered.
func (d *Dispatcher) NotifyOwner(body string) bool {
	if len(d.Senders) == 0 || d.Owner == "" {
		log.Println("WhatsApp notification skipped: no provider configured.")
		return false
	}

	sender := d.Senders[0]
	sent, err := sender.Send(d.Owner, body)
	if err != nil {
		log.Printf("WhatsApp notification via %s failed: %v", sender.Name(), err)
		return false
	}
	if !sent {
		log.Printf("WhatsApp notification via %s was not accepted.", sender.Name())
	}
	return sent
}

// NotifyOwner delivers through the Default dispatcher when one is set.
func NotifyOwner(body string) bool {
	if Default == nil {
		return false
	}
	return Default.NotifyOwner(body)
}
