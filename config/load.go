package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// recognizedKeys lists every directive Load and LoadFile pick up from the
// environment or a config file. Order matters only for readability.
var recognizedKeys = []string{
	KeyEnvironment,
	KeyAuthMode,
	KeyUsername,
	KeyPassword,
	KeySignature,
	KeyAccessToken,
	KeyTokenSecret,
	KeyApplicationID,
	KeySubject,
	KeyCACerts,
	KeyHTTPTimeout,
}

// Load resolves a Config from process environment variables. Each recognized
// directive is read from the environment variable of the same name
// (API_USERNAME, API_PASSWORD, and so on); unset or empty variables fall back
// to the defaults New applies.
func Load() (*Config, error) {
	v := viper.New()
	for _, key := range recognizedKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment variable %s: %w", key, err)
		}
	}

	directives := make(Directives, len(recognizedKeys))
	for _, key := range recognizedKeys {
		if value := v.Get(key); value != nil && value != "" {
			directives[key] = value
		}
	}
	return New(directives)
}

// LoadDotEnv loads variables from the named dotenv files (".env" when none
// are given) into the process environment and then resolves like Load.
// godotenv does not override variables already present in the environment,
// so real environment variables win over file contents. A missing dotenv
// file is not an error; resolution falls back to the current environment.
func LoadDotEnv(filenames ...string) (*Config, error) {
	_ = godotenv.Load(filenames...)
	return Load()
}

// LoadFile resolves a Config from a configuration file. The format is
// inferred from the file extension (YAML, JSON, and TOML are supported) and
// keys are matched case-insensitively, so a YAML file may use either
// api_username or API_USERNAME.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	directives := make(Directives, len(recognizedKeys))
	for _, key := range recognizedKeys {
		if v.IsSet(key) {
			directives[key] = v.Get(key)
		}
	}
	return New(directives)
}
