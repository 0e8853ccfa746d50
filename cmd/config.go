package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/plane"
	"cargo/internal/core/domain/model/ship"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	NoticeSinkLog    = "log"
	NoticeSinkStdout = "stdout"
)

// Config holds every tunable of the simulation. Defaults reproduce the
// demonstration vessels.
type Config struct {
	LogLevel      slog.Level          `env:"LOG_LEVEL"       envDefault:"info"`
	NoticeSink    string              `env:"NOTICE_SINK"     envDefault:"stdout"`
	RemovalPolicy cargo.RemovalPolicy `env:"REMOVAL_POLICY"  envDefault:"by-reference"`
	AirSpeedModel plane.DecayModel    `env:"AIR_SPEED_MODEL" envDefault:"inverse-sqrt"`

	ShipMaxCapacity int     `env:"SHIP_MAX_CAPACITY" envDefault:"20"`
	ShipMaxSpeed    float64 `env:"SHIP_MAX_SPEED"    envDefault:"25"`
	ShipMinDraft    float64 `env:"SHIP_MIN_DRAFT"    envDefault:"5"`
	ShipMaxDraft    float64 `env:"SHIP_MAX_DRAFT"    envDefault:"15"`

	PlaneMaxWeight int     `env:"PLANE_MAX_WEIGHT" envDefault:"10"`
	PlaneMaxSpeed  float64 `env:"PLANE_MAX_SPEED"  envDefault:"600"`
}

// LoadConfig reads the given dotenv files (".env" when none is named) and
// overlays the process environment on top. Missing files are skipped.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	environment := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
		maps.Copy(environment, values)
	}
	maps.Copy(environment, env.ToMap(os.Environ()))

	return ParseConfig(environment)
}

// ParseConfig builds a Config from an explicit variable set.
func ParseConfig(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values env parsing cannot: the notice sink name and the
// vessel particulars.
func (c Config) Validate() error {
	var sinkErr error
	if c.NoticeSink != NoticeSinkLog && c.NoticeSink != NoticeSinkStdout {
		sinkErr = fmt.Errorf("NOTICE_SINK %q is not one of %s, %s", c.NoticeSink, NoticeSinkLog, NoticeSinkStdout)
	}

	return errors.Join(
		sinkErr,
		c.ShipParticulars().Validate(),
		c.PlaneParticulars().Validate(),
	)
}

func (c Config) ShipParticulars() ship.Particulars {
	return ship.Particulars{
		MaxCapacity: c.ShipMaxCapacity,
		MaxSpeed:    c.ShipMaxSpeed,
		MinDraft:    c.ShipMinDraft,
		MaxDraft:    c.ShipMaxDraft,
	}
}

func (c Config) PlaneParticulars() plane.Particulars {
	return plane.Particulars{
		MaxWeight: c.PlaneMaxWeight,
		MaxSpeed:  c.PlaneMaxSpeed,
	}
}
