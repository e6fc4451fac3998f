package services

import (
	"context"
	"errors"
	"time"

	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/store"
)

// Locator is the platform location source. The HTTP deployment has no GPS
// of its own, so the default locator reports unsupported and clients push
// their coordinate through SetLocation instead; tests substitute stubs.
type Locator interface {
	Current(ctx context.Context) (geo.Coordinate, error)
}

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("location unavailable")
	ErrUnsupported         = errors.New("location not supported")
)

// User-facing fallback reasons, one per failure mode.
const (
	ReasonDenied      = "Location access denied. Using default location."
	ReasonUnavailable = "Location information unavailable. Using default location."
	ReasonTimedOut    = "Location request timed out. Using default location."
	ReasonUnsupported = "Geolocation is not supported. Using default location."
)

type UnsupportedLocator struct{}

func (UnsupportedLocator) Current(ctx context.Context) (geo.Coordinate, error) {
	return geo.Coordinate{}, ErrUnsupported
}

type LocationService struct {
	Locator Locator
	Default geo.Coordinate
	Timeout time.Duration
}

func NewLocationService(loc Locator, def geo.Coordinate, timeout time.Duration) *LocationService {
	return &LocationService{Locator: loc, Default: def, Timeout: timeout}
}

// Resolve returns the session's coordinate. Precedence: stored location,
// then the platform locator under the timeout, then the fixed default. A
// non-empty reason means the default was used and says why. The result is
// persisted, so a session resolves at most once.
func (s *LocationService) Resolve(ctx context.Context, st store.Store) (geo.Coordinate, string) {
	var stored geo.Coordinate
	if ok, _ := st.Get(store.KeyLocation, &stored); ok && stored.Valid() {
		return stored, ""
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	loc, err := s.Locator.Current(ctx)
	if err == nil && loc.Valid() {
		st.Set(store.KeyLocation, loc)
		return loc, ""
	}

	reason := fallbackReason(ctx, err)
	st.Set(store.KeyLocation, s.Default)
	return s.Default, reason
}

// SetLocation persists a client-chosen coordinate (map click).
func (s *LocationService) SetLocation(st store.Store, loc geo.Coordinate) error {
	if !loc.Valid() {
		return errors.New("invalid coordinate")
	}
	return st.Set(store.KeyLocation, loc)
}

func fallbackReason(ctx context.Context, err error) string {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		return ReasonTimedOut
	case errors.Is(err, ErrPermissionDenied):
		return ReasonDenied
	case errors.Is(err, ErrUnsupported):
		return ReasonUnsupported
	default:
		return ReasonUnavailable
	}
}
