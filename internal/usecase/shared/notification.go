package shared

import (
	"context"
	"fmt"
	"strings"

	"bookwell/internal/domain/appointment"

	"github.com/google/uuid"
)

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

var allChannels = []Channel{ChannelEmail, ChannelWhatsApp}

// flagKey enumerates gating explicitly per channel and event, e.g.
// "notifications.email.pending_approval". A missing key means the channel is
// off for that event.
func flagKey(ch Channel, event appointment.LifecycleEvent) string {
	return fmt.Sprintf("notifications.%s.%s", ch, strings.ToLower(string(event)))
}

// NotificationGate resolves, per tenant and event type, which channels should
// fire. It is consulted by the lifecycle, never owned by it.
type NotificationGate struct {
	flags FeatureFlagStore
}

func NewNotificationGate(flags FeatureFlagStore) *NotificationGate {
	return &NotificationGate{flags: flags}
}

func (g *NotificationGate) Channels(ctx context.Context, tenantID uuid.UUID, event appointment.LifecycleEvent) ([]Channel, error) {
	tenantFlags, err := g.flags.TenantFlags(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var enabled []Channel
	for _, ch := range allChannels {
		if tenantFlags[flagKey(ch, event)] {
			enabled = append(enabled, ch)
		}
	}
	return enabled, nil
}
