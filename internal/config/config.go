// Package config provides configuration structures and validation for the application.
// It handles environment-based configuration for the store locations, logging, and
// general application identity.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Config holds the complete application configuration. Each field represents a
// subsystem's configuration and is validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Stores      StoresConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// StoresConfig locates the JSON ledgers on disk. Each store owns exactly one
// file inside Dir.
type StoresConfig struct {
	Dir              string
	TransfersFile    string
	DepositsFile     string
	TransactionsFile string
	BalancesFile     string
}

// TransfersPath returns the full path of the transfers ledger file.
func (s StoresConfig) TransfersPath() string { return filepath.Join(s.Dir, s.TransfersFile) }

// DepositsPath returns the full path of the deposits ledger file.
func (s StoresConfig) DepositsPath() string { return filepath.Join(s.Dir, s.DepositsFile) }

// TransactionsPath returns the full path of the transactions ledger file.
func (s StoresConfig) TransactionsPath() string { return filepath.Join(s.Dir, s.TransactionsFile) }

// BalancesPath returns the full path of the balances ledger file.
func (s StoresConfig) BalancesPath() string { return filepath.Join(s.Dir, s.BalancesFile) }

// validate performs validation of all configuration values, ensuring they meet
// minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	if c.Stores.Dir == "" {
		validationErrors = append(validationErrors, "STORES_DIR is required")
	}
	if c.Stores.TransfersFile == "" {
		validationErrors = append(validationErrors, "STORES_TRANSFERS_FILE is required")
	}
	if c.Stores.DepositsFile == "" {
		validationErrors = append(validationErrors, "STORES_DEPOSITS_FILE is required")
	}
	if c.Stores.TransactionsFile == "" {
		validationErrors = append(validationErrors, "STORES_TRANSACTIONS_FILE is required")
	}
	if c.Stores.BalancesFile == "" {
		validationErrors = append(validationErrors, "STORES_BALANCES_FILE is required")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
