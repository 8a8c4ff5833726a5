// Package config manages configuration from command-line flags, an optional
// JSON config file and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address"`

	// BaseURL is the public base used when composing short URLs. Fixed for
	// the process lifetime.
	BaseURL string `json:"base_url"`

	// DatabaseDSN holds the PostgreSQL connection string. Empty selects the
	// in-memory store.
	DatabaseDSN string `json:"database_dsn"`

	// LogLevel sets the zap logging level.
	LogLevel string `json:"log_level"`

	// EnablePprof enables the pprof debug server.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS serves TLS via autocert instead of plain HTTP.
	EnableHTTPS bool `json:"enable_https"`

	// Config is the path to an optional JSON config file.
	Config string `json:"-"`
}

var options = &Options{}

func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.BaseURL, "b", "http://localhost:8080", "public base url for short links")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
	flag.StringVar(&options.Config, "c", "", "path to json config file")
}

// Parse resolves the configuration: flag defaults, then the config file if
// one is given, then environment variables on top.
func Parse() *Options {
	flag.Parse()

	if cfgPath := os.Getenv("CONFIG"); cfgPath != "" {
		options.Config = cfgPath
	}

	if options.Config != "" {
		applyFile(options.Config)
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err == nil {
			options.EnableHTTPS = httpsMode
		}
	}

	return options
}

func applyFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fileOpts Options
	if err := json.Unmarshal(content, &fileOpts); err != nil {
		return
	}

	if fileOpts.Port != "" {
		options.Port = fileOpts.Port
	}
	if fileOpts.BaseURL != "" {
		options.BaseURL = fileOpts.BaseURL
	}
	if fileOpts.DatabaseDSN != "" {
		options.DatabaseDSN = fileOpts.DatabaseDSN
	}
	if fileOpts.LogLevel != "" {
		options.LogLevel = fileOpts.LogLevel
	}
	if fileOpts.EnablePprof {
		options.EnablePprof = true
	}
	if fileOpts.EnableHTTPS {
		options.EnableHTTPS = true
	}
}
