package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"hotel/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

var steps = map[Direction]func(*migrate.Migrate) error{
	DirectionUp:     (*migrate.Migrate).Up,
	DirectionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	DirectionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	DirectionDrop:   (*migrate.Migrate).Down,
}

// DatabaseURL builds the golang-migrate URL for the write database.
func DatabaseURL(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	name := pg.Prefix + pg.Write.Name

	query := url.Values{}
	if pg.Write.SSLMode != "" {
		query.Set("sslmode", pg.Write.SSLMode)
	}

	if pg.MigrationTable != "" {
		query.Set("x-migrations-table", pg.MigrationTable)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Write.Username, pg.Write.Password),
		Host:     net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		Path:     "/" + name,
		RawQuery: query.Encode(),
	}

	return u.String()
}

// Run applies the migrations in the given direction. Nothing to do is not an error.
func Run(cfg *config.Config, direction Direction) error {
	step, ok := steps[direction]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	mig, err := migrate.New(migrationsSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}
	}()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", direction, err)
	}

	log.Info().Str("direction", string(direction)).Msg("Database migrations completed")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, DirectionUp)
}
