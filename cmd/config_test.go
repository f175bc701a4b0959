package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRunConfigDefaults(t *testing.T) {
	config, err := initRunConfig()
	require.NoError(t, err)

	assert.Equal(t, "cymbal_pets", config.DatasetID)
	assert.Equal(t, "USA", config.Country)
	assert.Equal(t, 1050, config.NumOfCustomers)
	assert.Equal(t, 2.0, config.DailyOrderRate)
	assert.Equal(t, 44, config.CaseDivisor)
	assert.Equal(t, 12, config.PetDivisor)
	assert.Equal(t, int64(0), config.Seed)
	assert.Equal(t, 5432, config.WarehousePort)
	assert.Equal(t, "postgres", config.WarehouseDB)
	assert.False(t, config.SkipLoad)
	assert.Equal(t, "INFO", config.LogLevel)
}

func TestInitRunConfigEnvOverrides(t *testing.T) {
	t.Setenv("PETGEN_DATASET_ID", "petshop_test")
	t.Setenv("PETGEN_NUM_OF_CUSTOMERS", "10")
	t.Setenv("PETGEN_DAILY_ORDER_RATE", "0.5")
	t.Setenv("PETGEN_WAREHOUSE_HOST", "db.internal")
	t.Setenv("PETGEN_SKIP_LOAD", "true")
	t.Setenv("PETGEN_SEED", "99")

	config, err := initRunConfig()
	require.NoError(t, err)

	assert.Equal(t, "petshop_test", config.DatasetID)
	assert.Equal(t, 10, config.NumOfCustomers)
	assert.Equal(t, 0.5, config.DailyOrderRate)
	assert.Equal(t, "db.internal", config.WarehouseHost)
	assert.True(t, config.SkipLoad)
	assert.Equal(t, int64(99), config.Seed)
}

func TestRunConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*runConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *runConfig) {}},
		{
			name:    "negative customers",
			mutate:  func(c *runConfig) { c.NumOfCustomers = -1 },
			wantErr: "num-of-customers",
		},
		{
			name:    "negative rate",
			mutate:  func(c *runConfig) { c.DailyOrderRate = -0.5 },
			wantErr: "daily-order-rate",
		},
		{
			name:    "zero case divisor",
			mutate:  func(c *runConfig) { c.CaseDivisor = 0 },
			wantErr: "case-divisor",
		},
		{
			name:    "zero pet divisor",
			mutate:  func(c *runConfig) { c.PetDivisor = 0 },
			wantErr: "pet-divisor",
		},
		{
			name:    "empty dataset id",
			mutate:  func(c *runConfig) { c.DatasetID = "" },
			wantErr: "dataset-id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testRunConfig()
			tt.mutate(config)
			err := config.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
