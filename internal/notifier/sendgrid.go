package notifier

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier delivers an email with both plain-text and HTML bodies.
// Delivery is best-effort; callers must never let a send failure
// affect an already-acknowledged request.
type Notifier interface {
	Send(toName, toEmail, subject, textContent, htmlContent string) error
}

type sendGridNotifier struct {
	apiKey     string
	senderName string
	senderMail string
}

// NewSendGridNotifier returns a Notifier backed by the SendGrid API.
func NewSendGridNotifier(apiKey, senderName, senderMail string) Notifier {
	return &sendGridNotifier{apiKey: apiKey, senderName: senderName, senderMail: senderMail}
}

func (n *sendGridNotifier) Send(toName, toEmail, subject, textContent, htmlContent string) error {
	if n.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set in environment variables")
	}

	from := mail.NewEmail(n.senderName, n.senderMail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)
	client := sendgrid.NewSendClient(n.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}
	return nil
}
