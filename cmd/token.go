package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/Barista/configs"
	"droscher.com/Barista/pkg/auth"
	"droscher.com/Barista/pkg/server"
)

type TokenCmd struct {
	ConfigFile  string        `default:".Barista.toml" help:"Path to config file" short:"c"`
	Subject     string        `default:"barista"       help:"Token subject"`
	Permissions []string      `help:"Permissions to grant (defaults to all)" short:"p" name:"permission"`
	TTL         time.Duration `default:"24h"           help:"Token lifetime" name:"ttl"`
}

func (t *TokenCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(t.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	permissions := t.Permissions
	if len(permissions) == 0 {
		permissions = []string{
			server.PermissionGetDrinksDetail,
			server.PermissionPostDrinks,
			server.PermissionPatchDrinks,
			server.PermissionDeleteDrinks,
		}
	}

	token, err := auth.NewAuthManager(conf.Auth, logger, nil).IssueToken(t.Subject, permissions, t.TTL)
	if err != nil {
		return err
	}

	fmt.Println(token) //nolint:forbidigo // the token is the command output

	return nil
}
