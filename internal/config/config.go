package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type SheetsConfig struct {
	SpreadsheetID     string
	CredentialsJSON   string
	ContractsRange    string
	ProvisionalsRange string
	ChangeOrdersRange string
	ClaimsRange       string
	IPCsRange         string
	AdvancesRange     string
}

type DashboardConfig struct {
	Packages          []string
	Currency          string
	AgingWatchDays    int
	AgingCriticalDays int
}

type Config struct {
	Environment string
	DataSource  string
	HTTP        HTTPConfig
	Sheets      SheetsConfig
	Dashboard   DashboardConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		DataSource:  v.GetString("DATA_SOURCE"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:     v.GetString("SHEETS_SPREADSHEET_ID"),
			CredentialsJSON:   v.GetString("SHEETS_CREDENTIALS_JSON"),
			ContractsRange:    v.GetString("SHEETS_CONTRACTS_RANGE"),
			ProvisionalsRange: v.GetString("SHEETS_PROVISIONALS_RANGE"),
			ChangeOrdersRange: v.GetString("SHEETS_CHANGE_ORDERS_RANGE"),
			ClaimsRange:       v.GetString("SHEETS_CLAIMS_RANGE"),
			IPCsRange:         v.GetString("SHEETS_IPCS_RANGE"),
			AdvancesRange:     v.GetString("SHEETS_ADVANCES_RANGE"),
		},
		Dashboard: DashboardConfig{
			Packages:          parseList(v.GetString("DASHBOARD_PACKAGES")),
			Currency:          v.GetString("DASHBOARD_CURRENCY"),
			AgingWatchDays:    v.GetInt("AGING_WATCH_DAYS"),
			AgingCriticalDays: v.GetInt("AGING_CRITICAL_DAYS"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataSource == "" {
		cfg.DataSource = "fixture"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Sheets.ContractsRange == "" {
		cfg.Sheets.ContractsRange = "contracts!A1:D"
	}
	if cfg.Sheets.ProvisionalsRange == "" {
		cfg.Sheets.ProvisionalsRange = "provisionals!A1:D"
	}
	if cfg.Sheets.ChangeOrdersRange == "" {
		cfg.Sheets.ChangeOrdersRange = "change_orders!A1:I"
	}
	if cfg.Sheets.ClaimsRange == "" {
		cfg.Sheets.ClaimsRange = "claims!A1:I"
	}
	if cfg.Sheets.IPCsRange == "" {
		cfg.Sheets.IPCsRange = "ipcs!A1:F"
	}
	if cfg.Sheets.AdvancesRange == "" {
		cfg.Sheets.AdvancesRange = "advances!A1:C"
	}
	if len(cfg.Dashboard.Packages) == 0 {
		cfg.Dashboard.Packages = []string{"A", "B", "C", "D", "F", "G", "I2", "PMEC"}
	}
	if cfg.Dashboard.Currency == "" {
		cfg.Dashboard.Currency = "AED"
	}
	if cfg.Dashboard.AgingWatchDays == 0 {
		cfg.Dashboard.AgingWatchDays = 30
	}
	if cfg.Dashboard.AgingCriticalDays == 0 {
		cfg.Dashboard.AgingCriticalDays = 60
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.DataSource {
	case "fixture":
	case "sheets":
		if cfg.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("SHEETS_SPREADSHEET_ID is required when DATA_SOURCE=sheets")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be fixture or sheets, got %q", cfg.DataSource)
	}
	if cfg.Dashboard.AgingWatchDays >= cfg.Dashboard.AgingCriticalDays {
		return fmt.Errorf("AGING_WATCH_DAYS must be below AGING_CRITICAL_DAYS")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
