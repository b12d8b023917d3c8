package mq

// Exchange Names
const (
	ExchangeMatchNotifications = "match_notifications"
)

// Exchange Types
const (
	ExchangeTypeDirect = "direct"
	ExchangeTypeFanout = "fanout"
)

// Queue Names
const (
	QueueMatchEmails = "match_email_queue"
)

// Routing Keys
const (
	RoutingKeyMatchCreated = "match.created"
)
