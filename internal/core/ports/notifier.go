package ports

import (
	"context"

	"relais/internal/core/domain/model/client"
)

// Notifier delivers out-of-band messages to clients about their parcels.
// Implementations decide the channel (email, SMS); failures are reported
// but callers treat notification as best-effort.
type Notifier interface {
	// NotifyParcelReceived tells the recipient a parcel awaits pickup.
	NotifyParcelReceived(ctx context.Context, recipient *client.Client, relayPointName string) error

	// NotifyParcelWithdrawn confirms a completed pickup to the recipient.
	NotifyParcelWithdrawn(ctx context.Context, recipient *client.Client, relayPointName string) error

	// NotifyHoursChanged tells a recipient with a waiting parcel that the
	// relay point's opening hours changed.
	NotifyHoursChanged(ctx context.Context, recipient *client.Client, relayPointName string, newHours string) error

	// NotifyUnclaimedParcel reminds a recipient of a parcel waiting too long.
	NotifyUnclaimedParcel(ctx context.Context, recipient *client.Client, relayPointName string, daysWaiting int) error
}
