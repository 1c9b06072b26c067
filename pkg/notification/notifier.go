package notification

import (
	"FoodWasteLogger/domain"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Notifier interface {
	Notify(ctx context.Context, alert domain.ExpiryAlert) error
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, alert domain.ExpiryAlert) error {
	log.Warnf("Food items expiring soon! Food waste risk level: %d (%s)", alert.UrgencyScore, alert.UrgencyLevel)
	for _, line := range alert.Lines {
		log.Warnf("  - %s", line)
	}
	return nil
}

// SendFunc matches mailing.SendMail.
type SendFunc func(toEmail string, subject string, body string) error

type mailNotifier struct {
	to   string
	send SendFunc
}

func NewMailNotifier(to string, send SendFunc) Notifier {
	return &mailNotifier{
		to:   to,
		send: send,
	}
}

func (n *mailNotifier) Notify(ctx context.Context, alert domain.ExpiryAlert) error {
	subject := fmt.Sprintf("%s: %d item(s) expiring soon", domain.AppName, len(alert.Items))
	if err := n.send(n.to, subject, RenderAlertHTML(alert)); err != nil {
		return fmt.Errorf("send expiry alert to %s: %w", n.to, err)
	}
	return nil
}

func RenderAlertHTML(alert domain.ExpiryAlert) string {
	var b strings.Builder

	b.WriteString("<h2>Food Items Expiring Soon!</h2><ul>")
	for _, line := range alert.Lines {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Food waste risk level: <b>%d</b> (%s)</p>", alert.UrgencyScore, alert.UrgencyLevel)
	b.WriteString("<p>Tip: Check your expiring items daily and plan meals accordingly to reduce food waste.</p>")

	return b.String()
}
