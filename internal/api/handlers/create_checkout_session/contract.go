package create_checkout_session

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/integrations/checkout"
)

type CheckoutClient interface {
	CreateSession(ctx context.Context, req *checkout.SessionRequest) (*checkout.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
