package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/config"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/excel"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/fixture"
	httphandler "github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/http"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/logger"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/pdf"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/repository"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/service"
	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	source, err := buildSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init data source")
	}

	gov := service.NewGovernance(source, excel.NewGenerator(), pdf.NewGenerator(), cfg)
	handler := httphandler.NewHandler(gov, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("source", cfg.DataSource).Msg("starting icgris service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func buildSource(cfg *config.Config) (service.Source, error) {
	if cfg.DataSource == "fixture" {
		return fixture.NewSource(), nil
	}

	client, err := sheets.NewClient(context.Background(), cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsJSON)
	if err != nil {
		return nil, err
	}
	return repository.NewDashboard(client, repository.Ranges{
		Contracts:    cfg.Sheets.ContractsRange,
		Provisionals: cfg.Sheets.ProvisionalsRange,
		ChangeOrders: cfg.Sheets.ChangeOrdersRange,
		Claims:       cfg.Sheets.ClaimsRange,
		IPCs:         cfg.Sheets.IPCsRange,
		Advances:     cfg.Sheets.AdvancesRange,
	}), nil
}
