package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Defaults used when the environment does not override them.
const (
	DefaultSampleLimit  = 100
	DefaultPreviewLimit = 5
	DefaultLogLevel     = "info"
)

type WizardConfiguration struct {
	SampleLimit  int
	PreviewLimit int
	LogLevel     string
}

// LoadEnvConfig loads wizard defaults from an env file, falling back to the
// process environment. A missing file is not an error; every wizard setting
// has a usable default.
func LoadEnvConfig(configName string) WizardConfiguration {
	if configName != "" {
		if err := godotenv.Load(configName); err != nil {
			logrus.Debugf("env file %s not loaded: %v", configName, err)
		}
	}

	return WizardConfiguration{
		SampleLimit:  envInt("SCHEMAWIZ_SAMPLE_LIMIT", DefaultSampleLimit),
		PreviewLimit: envInt("SCHEMAWIZ_PREVIEW_LIMIT", DefaultPreviewLimit),
		LogLevel:     envString("SCHEMAWIZ_LOG_LEVEL", DefaultLogLevel),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return value
}
