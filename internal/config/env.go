package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Default values
const (
	DefaultAppID            = "com.ytget.clinic-dashboard"
	DefaultLoginLatency     = time.Second
	DefaultMobileBreakpoint = 768
	DefaultLanguage         = "system"
)

// Env is the process configuration read from the environment.
type Env struct {
	AppID            string        `env:"CLINIC_APP_ID"            envDefault:"com.ytget.clinic-dashboard"`
	LoginLatency     time.Duration `env:"CLINIC_LOGIN_LATENCY"     envDefault:"1s"`
	DirectoryFile    string        `env:"CLINIC_DIRECTORY_FILE"`
	MobileBreakpoint float32       `env:"CLINIC_MOBILE_BREAKPOINT" envDefault:"768"`
	Language         string        `env:"CLINIC_LANGUAGE"          envDefault:"system"`
	Verbose          bool          `env:"CLINIC_VERBOSE"`
}

// LoadEnv parses the environment into Env and normalizes out-of-range values.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return DefaultEnv(), fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// DefaultEnv returns the configuration used when nothing is set.
func DefaultEnv() Env {
	return Env{
		AppID:            DefaultAppID,
		LoginLatency:     DefaultLoginLatency,
		MobileBreakpoint: DefaultMobileBreakpoint,
		Language:         DefaultLanguage,
	}
}

func (e *Env) normalize() {
	if e.AppID == "" {
		e.AppID = DefaultAppID
	}
	if e.LoginLatency < 0 {
		e.LoginLatency = 0
	}
	if e.MobileBreakpoint <= 0 {
		e.MobileBreakpoint = DefaultMobileBreakpoint
	}
	if e.Language == "" {
		e.Language = DefaultLanguage
	}
}
