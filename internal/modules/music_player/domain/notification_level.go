package domain

// NotificationLevel controls who sees confirmations of player actions.
type NotificationLevel int

const (
	// NotificationSilent suppresses confirmations entirely.
	NotificationSilent NotificationLevel = iota
	// NotificationPrivate sends confirmations only to the actor.
	NotificationPrivate
	// NotificationPublic posts confirmations in the channel.
	NotificationPublic
)

// DefaultNotificationLevel is the level of a new session.
const DefaultNotificationLevel = NotificationPublic

// Next returns the level that follows l in the cycle PUBLIC, SILENT, PRIVATE.
func (l NotificationLevel) Next() NotificationLevel {
	switch l {
	case NotificationPublic:
		return NotificationSilent
	case NotificationSilent:
		return NotificationPrivate
	default:
		return NotificationPublic
	}
}

func (l NotificationLevel) String() string {
	switch l {
	case NotificationSilent:
		return "silent"
	case NotificationPrivate:
		return "private"
	case NotificationPublic:
		return "public"
	default:
		return "unknown"
	}
}
