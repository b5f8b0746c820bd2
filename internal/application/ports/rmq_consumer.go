package ports

import "context"

// RMQConsumer drains the notification queue and turns each message
// into an outbound email.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
