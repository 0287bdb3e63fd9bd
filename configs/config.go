package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"[*]"`
}

type Config struct {
	DB     DB
	Server Server
	Auth   Auth
}

// Auth describes how bearer tokens are verified. Audience and Domain are only
// enforced when set.
type Auth struct {
	SecretKey string `validate:"required"`
	Audience  string
	Domain    string
}

const envPrefix = "BARISTA" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, errors.Join(ErrConfiguration, err)
			}
		} else {
			return nil, errors.Join(ErrConfiguration, err)
		}
	}

	return &config, nil
}

// Issuer is the expected "iss" claim, or empty when issuers are not checked.
func (a Auth) Issuer() string {
	if a.Domain == "" {
		return ""
	}

	return "https://" + a.Domain + "/"
}
