package timezone

import (
	"sync"
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
)

var (
	mu       sync.RWMutex
	location *time.Location
)

// Load resolves an IANA zone name, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, using UTC")

		return time.UTC
	}

	return loc
}

// SetLocation overrides the application zone.
func SetLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	location = loc
}

// GetLocation returns the application zone, loading it from config on first call.
func GetLocation() *time.Location {
	mu.RLock()
	loc := location
	mu.RUnlock()

	if loc != nil {
		return loc
	}

	mu.Lock()
	defer mu.Unlock()

	if location == nil {
		location = Load(config.Get().App.Timezone)

		log.Info().Str("timezone", location.String()).Msg("Application timezone initialized")
	}

	return location
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
