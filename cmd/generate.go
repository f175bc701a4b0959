package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type genFlags struct {
	datasetID      string
	bucketDir      string
	seedDir        string
	geoURL         string
	country        string
	numOfCustomers int
	dailyOrderRate float64
	seed           int64

	host     string
	port     int
	user     string
	password string
	db       string
	skipLoad bool

	nonInteractive bool
	logLevel       string
}

var genCfg genFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Cymbal Pets dataset and load it into the warehouse",
	Long: `Generates the full Cymbal Pets retail dataset: products, stores, suppliers,
customers, employees, pets, service cases, orders and order items. Output is
written as NDJSON snapshots under a per-run directory and, unless --skip-load
is set, replaces the contents of the warehouse schema.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genCfg.datasetID, "dataset-id", "", "Warehouse schema name (or PETGEN_DATASET_ID env)")
	generateCmd.Flags().StringVar(&genCfg.bucketDir, "bucket-dir", "", "Directory for NDJSON snapshots (or PETGEN_BUCKET_DIR env)")
	generateCmd.Flags().StringVar(&genCfg.seedDir, "seed-dir", "", "Directory holding seed catalog files (or PETGEN_SEED_DIR env)")
	generateCmd.Flags().StringVar(&genCfg.geoURL, "geo-url", "", "URL of the countries/states/cities dataset (or PETGEN_GEO_URL env)")
	generateCmd.Flags().StringVar(&genCfg.country, "country", "", "ISO3 country code for addresses (or PETGEN_COUNTRY env)")
	generateCmd.Flags().IntVar(&genCfg.numOfCustomers, "num-of-customers", 0, "Number of customers to generate (or PETGEN_NUM_OF_CUSTOMERS env)")
	generateCmd.Flags().Float64Var(&genCfg.dailyOrderRate, "daily-order-rate", 0, "Average orders per day since business start (or PETGEN_DAILY_ORDER_RATE env)")
	generateCmd.Flags().Int64Var(&genCfg.seed, "seed", 0, "Random seed; 0 means time-based (or PETGEN_SEED env)")

	generateCmd.Flags().StringVar(&genCfg.host, "host", "", "Warehouse PostgreSQL host (or PETGEN_WAREHOUSE_HOST env)")
	generateCmd.Flags().IntVar(&genCfg.port, "port", 0, "Warehouse PostgreSQL port (or PETGEN_WAREHOUSE_PORT env)")
	generateCmd.Flags().StringVar(&genCfg.user, "user", "", "Warehouse PostgreSQL username (or PETGEN_WAREHOUSE_USER env)")
	generateCmd.Flags().StringVar(&genCfg.db, "db", "", "Warehouse PostgreSQL database (or PETGEN_WAREHOUSE_DB env)")
	generateCmd.Flags().BoolVar(&genCfg.skipLoad, "skip-load", false, "Write NDJSON snapshots only, skip the warehouse load")
	generateCmd.Flags().BoolVar(&genCfg.nonInteractive, "non-interactive", false, "Never prompt; fail if any required value is missing")
	generateCmd.Flags().StringVar(&genCfg.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARNING, ERROR (or PETGEN_LOG_LEVEL env)")
}

// applyFlags overlays changed command flags onto the environment-derived
// config. Flags always win over environment variables.
func applyFlags(cmd *cobra.Command, config *runConfig) {
	if cmd.Flags().Changed("dataset-id") {
		config.DatasetID = genCfg.datasetID
	}
	if cmd.Flags().Changed("bucket-dir") {
		config.BucketDir = genCfg.bucketDir
	}
	if cmd.Flags().Changed("seed-dir") {
		config.SeedDir = genCfg.seedDir
	}
	if cmd.Flags().Changed("geo-url") {
		config.GeoURL = genCfg.geoURL
	}
	if cmd.Flags().Changed("country") {
		config.Country = genCfg.country
	}
	if cmd.Flags().Changed("num-of-customers") {
		config.NumOfCustomers = genCfg.numOfCustomers
	}
	if cmd.Flags().Changed("daily-order-rate") {
		config.DailyOrderRate = genCfg.dailyOrderRate
	}
	if cmd.Flags().Changed("seed") {
		config.Seed = genCfg.seed
	}
	if cmd.Flags().Changed("host") {
		config.WarehouseHost = genCfg.host
	}
	if cmd.Flags().Changed("port") {
		config.WarehousePort = genCfg.port
	}
	if cmd.Flags().Changed("user") {
		config.WarehouseUser = genCfg.user
	}
	if cmd.Flags().Changed("db") {
		config.WarehouseDB = genCfg.db
	}
	if cmd.Flags().Changed("skip-load") {
		config.SkipLoad = genCfg.skipLoad
	}
	if cmd.Flags().Changed("log-level") {
		config.LogLevel = genCfg.logLevel
	}
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}
	return string(pass)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := initRunConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, config)
	if err := config.validate(); err != nil {
		return err
	}
	if err := initLogger(config.LogLevel); err != nil {
		return fmt.Errorf("could not init logger: %w", err)
	}

	ctx := context.Background()

	if !config.SkipLoad {
		if config.WarehouseHost == "" || config.WarehouseUser == "" {
			return fmt.Errorf("missing warehouse config: set flags/env or pass --skip-load (see --help)")
		}
		if config.WarehousePassword == "" && !genCfg.nonInteractive {
			config.WarehousePassword = promptPassword("Warehouse password: ")
		}

		// Verify connectivity before generating anything.
		connStr := buildConnStr(config.WarehouseHost, config.WarehousePort,
			config.WarehouseUser, config.WarehousePassword, config.WarehouseDB)
		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			return fmt.Errorf("connect to warehouse: %w", err)
		}
		conn.Close(ctx)
		log.Infof("connected to %s:%d", config.WarehouseHost, config.WarehousePort)
	}

	geo := newGeoSource(config.GeoURL)
	catalog := dirCatalog{dir: config.SeedDir}
	return executeRun(ctx, config, geo, catalog, newPgxLoader(config))
}
