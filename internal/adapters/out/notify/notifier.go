// Package notify delivers parcel notifications to clients over email and SMS.
//
// Delivery is stubbed: messages are composed exactly as they would be sent and
// written to the structured log together with the configured gateway targets.
// Swapping in a real SMTP or SMS gateway only touches the send method.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"relais/internal/core/domain/model/client"
)

// Config carries the gateway settings for outbound notifications.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	FromEmail string

	SMSGatewayURL string
	SMSSender     string
}

// Notifier implements ports.Notifier. Every message goes to the client's
// email address; SMS is added when the client has a phone number on file.
type Notifier struct {
	config Config
	logger *slog.Logger
}

// NewNotifier creates a notifier with the given gateway configuration.
func NewNotifier(config Config, logger *slog.Logger) *Notifier {
	return &Notifier{
		config: config,
		logger: logger.With("component", "notifier"),
	}
}

// NotifyParcelReceived tells the recipient a parcel awaits pickup.
func (n *Notifier) NotifyParcelReceived(ctx context.Context, recipient *client.Client, relayPointName string) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	subject := "Your parcel has arrived"
	body := fmt.Sprintf(
		"Hello %s, your parcel is ready for pickup at %s. Bring your QR code to collect it.",
		recipient.Name(), relayPointName)
	return n.send(ctx, recipient, subject, body)
}

// NotifyParcelWithdrawn confirms a completed pickup to the recipient.
func (n *Notifier) NotifyParcelWithdrawn(ctx context.Context, recipient *client.Client, relayPointName string) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	subject := "Pickup confirmed"
	body := fmt.Sprintf(
		"Hello %s, your parcel was collected at %s. Thank you for using our relay network.",
		recipient.Name(), relayPointName)
	return n.send(ctx, recipient, subject, body)
}

// NotifyHoursChanged tells a recipient with a waiting parcel that the relay
// point's opening hours changed.
func (n *Notifier) NotifyHoursChanged(
	ctx context.Context, recipient *client.Client, relayPointName string, newHours string,
) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	subject := "Relay point hours changed"
	body := fmt.Sprintf(
		"Hello %s, the opening hours of %s, where a parcel awaits you, are now: %s.",
		recipient.Name(), relayPointName, newHours)
	return n.send(ctx, recipient, subject, body)
}

// NotifyUnclaimedParcel reminds a recipient of a parcel waiting too long.
func (n *Notifier) NotifyUnclaimedParcel(
	ctx context.Context, recipient *client.Client, relayPointName string, daysWaiting int,
) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	subject := "Reminder: parcel awaiting pickup"
	body := fmt.Sprintf(
		"Hello %s, a parcel has been waiting for you at %s for %d days. Please collect it soon.",
		recipient.Name(), relayPointName, daysWaiting)
	return n.send(ctx, recipient, subject, body)
}

func (n *Notifier) send(ctx context.Context, recipient *client.Client, subject string, body string) error {
	n.logger.InfoContext(ctx, "email notification sent",
		"smtp_host", n.config.SMTPHost,
		"smtp_port", n.config.SMTPPort,
		"from", n.config.FromEmail,
		"to", recipient.Email(),
		"subject", subject,
		"body", body,
	)

	if phone := recipient.Phone(); phone != "" {
		n.logger.InfoContext(ctx, "sms notification sent",
			"gateway", n.config.SMSGatewayURL,
			"sender", n.config.SMSSender,
			"to", phone,
			"body", body,
		)
	}

	return nil
}
