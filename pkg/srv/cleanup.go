package srv

import "context"

// NewCleanup wraps a teardown function (closing the database, flushing
// a writer) as a Service so it rides the same shutdown path as the real
// services. Start is a no-op; the function runs once at Shutdown.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup == nil {
		return nil
	}
	return c.cleanup()
}
