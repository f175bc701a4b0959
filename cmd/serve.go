package cmd

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP trigger for dataset generation",
	Long: `Starts a small HTTP server exposing POST /generate. Each request performs
one full generation run with the current environment configuration, so the
generator can be triggered by a scheduler or a cloud function frontend.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := initRunConfig()
	if err != nil {
		return err
	}
	if err := initLogger(config.LogLevel); err != nil {
		return fmt.Errorf("could not init logger: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.POST("/generate", func(c echo.Context) error {
		// Re-read config per request so environment changes take effect
		// without a restart.
		config, err := initRunConfig()
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		geo := newGeoSource(config.GeoURL)
		catalog := dirCatalog{dir: config.SeedDir}
		if err := executeRun(c.Request().Context(), config, geo, catalog, newPgxLoader(config)); err != nil {
			log.Errorf("run failed: %v", err)
			return c.String(http.StatusInternalServerError, fmt.Sprintf("Function failed: %v", err))
		}
		return c.String(http.StatusOK, "Function successfully finished")
	})

	log.Infof("listening on %s", serveAddr)
	return e.Start(serveAddr)
}
