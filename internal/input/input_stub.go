//go:build !darwin && !windows

package input

import (
	"log/slog"

	"kbtrackpad/internal/display"
)

type unsupported struct{}

// NewInterceptor returns an interceptor whose Start always fails.
func NewInterceptor(_ *slog.Logger) Interceptor {
	return unsupported{}
}

func (unsupported) Start(Handler) error { return ErrUnsupportedPlatform }
func (unsupported) Reenable()           {}
func (unsupported) Stop() error         { return nil }

// NewWarper returns a warper whose WarpTo always fails.
func NewWarper() Warper {
	return unsupported{}
}

func (unsupported) WarpTo(display.Display, display.Point) error {
	return ErrUnsupportedPlatform
}
