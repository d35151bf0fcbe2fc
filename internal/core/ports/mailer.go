package ports

import "context"

// Mailer sends transactional email through the external mail API.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
}
