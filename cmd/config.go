package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// cymbalPetsStartDate is the day the fictional business opened. Order and
// hire dates never precede it.
var cymbalPetsStartDate = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

const defaultGeoURL = "https://raw.githubusercontent.com/dr5hn/countries-states-cities-database/master/json/countries%2Bstates%2Bcities.json"

// runConfig holds the parameters of one generation run. Every field can be
// supplied as a PETGEN_-prefixed environment variable; command flags override.
type runConfig struct {
	DatasetID      string  `mapstructure:"dataset-id"`
	BucketDir      string  `mapstructure:"bucket-dir"`
	SeedDir        string  `mapstructure:"seed-dir"`
	GeoURL         string  `mapstructure:"geo-url"`
	Country        string  `mapstructure:"country"`
	NumOfCustomers int     `mapstructure:"num-of-customers"`
	DailyOrderRate float64 `mapstructure:"daily-order-rate"`
	CaseDivisor    int     `mapstructure:"case-divisor"`
	PetDivisor     int     `mapstructure:"pet-divisor"`
	Seed           int64   `mapstructure:"seed"`

	WarehouseHost     string `mapstructure:"warehouse-host"`
	WarehousePort     int    `mapstructure:"warehouse-port"`
	WarehouseUser     string `mapstructure:"warehouse-user"`
	WarehousePassword string `mapstructure:"warehouse-password"`
	WarehouseDB       string `mapstructure:"warehouse-db"`
	SkipLoad          bool   `mapstructure:"skip-load"`

	LogLevel string `mapstructure:"log-level"`
}

var configDefaults = map[string]any{
	"dataset-id":         "cymbal_pets",
	"bucket-dir":         "./bucket",
	"seed-dir":           "./seed",
	"geo-url":            defaultGeoURL,
	"country":            "USA",
	"num-of-customers":   1050,
	"daily-order-rate":   2.0,
	"case-divisor":       44,
	"pet-divisor":        12,
	"seed":               int64(0),
	"warehouse-host":     "",
	"warehouse-port":     5432,
	"warehouse-user":     "",
	"warehouse-password": "",
	"warehouse-db":       "postgres",
	"skip-load":          false,
	"log-level":          "INFO",
}

// initRunConfig reads run parameters from the environment. Defaults cover a
// local demo run; only the warehouse connection has no usable default.
func initRunConfig() (*runConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("PETGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for key, def := range configDefaults {
		v.SetDefault(key, def)
	}

	var config runConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *runConfig) validate() error {
	if c.NumOfCustomers < 0 {
		return fmt.Errorf("num-of-customers must be >= 0, got %d", c.NumOfCustomers)
	}
	if c.DailyOrderRate < 0 {
		return fmt.Errorf("daily-order-rate must be >= 0, got %v", c.DailyOrderRate)
	}
	if c.CaseDivisor <= 0 {
		return fmt.Errorf("case-divisor must be > 0, got %d", c.CaseDivisor)
	}
	if c.PetDivisor <= 0 {
		return fmt.Errorf("pet-divisor must be > 0, got %d", c.PetDivisor)
	}
	if c.DatasetID == "" {
		return fmt.Errorf("dataset-id must not be empty")
	}
	return nil
}
