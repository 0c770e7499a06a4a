// Package envconfig loads the runtime configuration from the process
// environment, optionally seeded from a dotenv file.
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/aalvaropc/wxsend/internal/domain"
)

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &domain.OpError{
			Op:   "envconfig.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Load parses the configuration. A nil environ reads the process environment.
func Load(environ map[string]string) (domain.Config, error) {
	var dto envDTO
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&dto, opts); err != nil {
		return domain.Config{}, mapParseError(err)
	}
	return mapConfig(dto)
}

func mapConfig(dto envDTO) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.AccessToken = strings.TrimSpace(dto.AccessToken)
	cfg.Debug = dto.Debug

	if dto.HTTPTimeout < 0 {
		return domain.Config{}, &domain.OpError{
			Op:   "envconfig.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("WEBEX_HTTP_TIMEOUT must not be negative, got %s", dto.HTTPTimeout),
		}
	}
	if dto.HTTPTimeout > 0 {
		cfg.HTTPTimeout = dto.HTTPTimeout
	}

	if cfg.AccessToken == "" {
		return domain.Config{}, &domain.OpError{
			Op:   "envconfig.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: set WEBEX_ACCESS_TOKEN", domain.ErrMissingToken),
		}
	}
	return cfg, nil
}

func mapParseError(err error) error {
	var agg env.AggregateError
	if errors.As(err, &agg) {
		for _, e := range agg.Errors {
			switch e.(type) {
			case env.EnvVarIsNotSetError, env.EmptyEnvVarError:
				return &domain.OpError{
					Op:   "envconfig.load",
					Kind: domain.KindInvalidConfig,
					Err:  fmt.Errorf("%w: set WEBEX_ACCESS_TOKEN", domain.ErrMissingToken),
				}
			}
		}
	}
	return &domain.OpError{
		Op:   "envconfig.load",
		Kind: domain.KindInvalidConfig,
		Err:  err,
	}
}
