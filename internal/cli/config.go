package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/logging"
)

const envPrefix = "LSSS"

// Configuration keys. Each is a persistent flag, an LSSS_ environment
// variable (dashes become underscores) and a key in the --config file.
const (
	keyConfig   = "config"
	keyField    = "field"
	keyLogLevel = "log-level"
	keySeed     = "seed"
	keyOutput   = "output"
	keyTrace    = "trace"
	keyMetrics  = "metrics"
)

const defaultField = "bn254"

// Settings is the resolved configuration shared by every command.
type Settings struct {
	Field    string
	LogLevel string
	Seed     string
	Output   string
	Trace    bool
	Metrics  bool
}

func loadSettings(v *viper.Viper) (Settings, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	s := Settings{
		Field:    v.GetString(keyField),
		LogLevel: v.GetString(keyLogLevel),
		Seed:     v.GetString(keySeed),
		Output:   v.GetString(keyOutput),
		Trace:    v.GetBool(keyTrace),
		Metrics:  v.GetBool(keyMetrics),
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, err
	}
	switch OutputFormat(s.Output) {
	case OutputFormatText, OutputFormatJSON:
	default:
		return Settings{}, fmt.Errorf("unknown output format: %s", s.Output)
	}
	return s, nil
}
