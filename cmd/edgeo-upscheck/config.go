package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/edgeo-scada/upscheck/snmp"
)

const envPrefix = "EDGEO_UPSCHECK"

// Config holds the settings of one invocation.
type Config struct {
	Host      string
	Community string
	Command   string
	Port      int
	Version   snmp.SNMPVersion
	Retries   int

	// Timeout is the request timeout in seconds; 0 keeps the library default.
	Timeout int
	// Warning, Critical and Unknown are accepted for future commands.
	Warning  string
	Critical string
	Unknown  bool

	Output  OutputFormat
	Verbose bool
	Color   bool
}

// newViper returns a viper instance bound to flags and the environment.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// readConfigFile loads cfgFile, or the default file from the home directory
// when cfgFile is empty. A missing default file is not an error.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return v.ReadInConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.AddConfigPath(filepath.Join(home, ".config"))
	v.SetConfigName(".edgeo-upscheck")
	v.SetConfigType("yaml")

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// loadConfig resolves flags, environment and config file into a Config.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Host:      strings.TrimSpace(v.GetString("host")),
		Community: v.GetString("community"),
		Command:   strings.TrimSpace(v.GetString("command")),
		Port:      v.GetInt("port"),
		Retries:   v.GetInt("retries"),
		Timeout:   v.GetInt("timeout"),
		Warning:   v.GetString("warning"),
		Critical:  v.GetString("critical"),
		Unknown:   v.GetBool("unknown"),
		Verbose:   v.GetBool("verbose"),
		Color:     v.GetBool("color"),
	}

	version, err := snmp.ParseVersion(v.GetString("snmp-version"))
	if err != nil {
		return cfg, err
	}
	cfg.Version = version

	output, err := ParseOutputFormat(v.GetString("output"))
	if err != nil {
		return cfg, err
	}
	cfg.Output = output

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, usageError("invalid port %d", cfg.Port)
	}
	if cfg.Timeout < 0 {
		return cfg, usageError("invalid timeout %d", cfg.Timeout)
	}
	if cfg.Retries < 0 {
		return cfg, usageError("invalid retries %d", cfg.Retries)
	}

	return cfg, nil
}
