package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is the application configuration: data locations, analysis
// parameters and the optional mailbox/notification integrations.
type Config struct {
	DataSource string `json:"data_source"` // source xlsx, relative to DataDir
	DataDir    string `json:"data_dir"`
	ReportsDir string `json:"reports_dir"`
	SheetName  string `json:"sheet_name"` // empty means first sheet

	AnalysisParams AnalysisParams `json:"analysis_params"`

	LogName    string `json:"log_name"`
	LogMaxSize string `json:"log_max_size"` // e.g. "10 * 1024 * 1024"

	Watch      bool   `json:"watch"` // keep running, re-process on new exports
	WebhookURL string `json:"webhook_url"`

	Email struct {
		Server        string   `json:"server"`
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TargetSubject string   `json:"target_subject"`
		CheckInterval Duration `json:"check_interval"`
	} `json:"email"`

	SendEmail struct {
		Server   string `json:"server"`
		Username string `json:"username"`
		Password string `json:"password"`
		To       string `json:"to"`
		Subject  string `json:"subject"`
	} `json:"send_email"`
}

// AnalysisParams drive the analysis engine. Malformed or missing
// configuration falls back to these documented defaults; configuration
// problems are never fatal.
type AnalysisParams struct {
	DelayThreshold           float64 `json:"delay_threshold"`            // minutes
	CascadeFactor            float64 `json:"cascade_factor"`             // unitless, 0-1
	SimulationDelayReduction float64 `json:"simulation_delay_reduction"` // minutes
	PeakHourShift            int     `json:"peak_hour_shift"`            // hours
}

func Default() *Config {
	cfg := &Config{
		DataSource: "Flight_Data.xlsx",
		DataDir:    "data",
		ReportsDir: "reports",
		AnalysisParams: AnalysisParams{
			DelayThreshold:           15,
			CascadeFactor:            0.4,
			SimulationDelayReduction: 5,
			PeakHourShift:            1,
		},
		LogName:    "app.log",
		LogMaxSize: "10 * 1024 * 1024",
	}
	cfg.Email.CheckInterval = Duration(5 * time.Minute)
	return cfg
}

// Load reads the JSON config file and merges it over the defaults,
// then applies environment overrides (a .env file is honored when
// present, so credentials stay out of the JSON). A missing or
// malformed file leaves the defaults in place.
func Load(path string) *Config {
	cfg := Default()

	if path != "" {
		if data, err := os.ReadFile(path); err != nil {
			fmt.Printf("config: %v, using defaults\n", err)
		} else if err := json.Unmarshal(data, cfg); err != nil {
			cfg = Default()
			fmt.Printf("config: invalid JSON in %s: %v, using defaults\n", path, err)
		}
	}

	_ = godotenv.Load()
	applyEnv(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Email.Server, "FLIGHT_IMAP_SERVER")
	set(&cfg.Email.Username, "FLIGHT_IMAP_USERNAME")
	set(&cfg.Email.Password, "FLIGHT_IMAP_PASSWORD")
	set(&cfg.SendEmail.Server, "FLIGHT_SMTP_SERVER")
	set(&cfg.SendEmail.Username, "FLIGHT_SMTP_USERNAME")
	set(&cfg.SendEmail.Password, "FLIGHT_SMTP_PASSWORD")
	set(&cfg.WebhookURL, "FLIGHT_WEBHOOK_URL")
}

// Duration wraps time.Duration so intervals can be written as
// human-readable JSON strings like "5m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
