package geo

import (
	"fmt"
	"math"
	"math/rand"
)

// Coordinate is a WGS84 point. Value type, never mutated.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

const (
	EarthRadiusKm = 6371

	// MaxDeliveryDistanceKm is the system-wide delivery radius.
	MaxDeliveryDistanceKm = 100.0
)

// Source supplies the randomness used by the mock estimator. *rand.Rand
// satisfies it, so tests can pin a seed.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int   { return rand.Intn(n) }

// Estimator computes distances and delivery times over mock data. Both are
// deliberately non-deterministic: the catalog reuses coordinates, so
// identical points get a fake nearby distance and real distances are
// inflated a little on every call to simulate live variance.
type Estimator struct {
	src Source
}

func NewEstimator() *Estimator { return &Estimator{src: globalSource{}} }

func NewEstimatorWithSource(src Source) *Estimator { return &Estimator{src: src} }

// DistanceKm returns the great-circle distance between a and b in km.
// Identical points yield a random distance in [0.5, 5.0); anything else is
// the haversine distance inflated by a random factor in [0%, 5%).
func (e *Estimator) DistanceKm(a, b Coordinate) float64 {
	if a == b {
		return 0.5 + e.src.Float64()*4.5
	}

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	d := EarthRadiusKm * c
	return d + d*0.05*e.src.Float64()
}

// ETAMinutes estimates delivery time for a distance: random preparation
// time in [10,20) minutes plus travel at a random speed in [15,30) km/h.
func (e *Estimator) ETAMinutes(distanceKm float64) int {
	base := 10 + e.src.Intn(10)
	speed := float64(15 + e.src.Intn(15))
	travel := distanceKm / speed * 60
	return int(math.Round(float64(base) + travel))
}

// Serviceable reports whether a restaurant at the given distance is inside
// the delivery radius.
func Serviceable(distanceKm float64) bool {
	return distanceKm <= MaxDeliveryDistanceKm
}

// FormatDistance renders sub-kilometre distances in metres, otherwise one
// decimal in km.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatDuration renders minutes, switching to "H hour(s) M minutes" at an
// hour or more.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	unit := "hour"
	if hours > 1 {
		unit = "hours"
	}
	return fmt.Sprintf("%d %s %d minutes", hours, unit, rem)
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
