package email

// Message is a single outgoing email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Provider sends email. Implementations must be safe for concurrent use.
type Provider interface {
	// Send delivers a message.
	Send(msg *Message) error

	// Validate checks the provider configuration.
	Validate() error
}
