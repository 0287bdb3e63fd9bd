package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Barista/configs"
	"droscher.com/Barista/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".Barista.toml" help:"Path to config file" short:"c"`
	Reset      bool   `help:"Drop the drinks table and seed it with a single drink"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close() //nolint:errcheck // nothing left to do on close failure

	if err = repo.Migrate(context.Background(), m.Reset); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	logger.Info("database migrated", zap.Bool("reset", m.Reset))

	return nil
}
