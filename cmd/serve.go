package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Barista/configs"
	"droscher.com/Barista/pkg/repository"
	"droscher.com/Barista/pkg/server"
)

const (
	timeout          = 5 * time.Second
	compressMinBytes = 1024
)

type ServeCmd struct {
	ConfigFile string `default:".Barista.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}

	mux := http.NewServeMux()

	checker := grpchealth.NewStaticChecker(server.ServiceName)
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	mux.Handle(grpchealth.NewHandler(checker, connect.WithCompressMinBytes(compressMinBytes)))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	mux.Handle("/", server.NewRouter(repo, conf.Auth, server.NewMetrics(), logger))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(mux, conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("starting server", zap.String("address", address))
		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err = svr.Shutdown(shutdownCtx)
	}

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	err = multierr.Append(err, repo.Close())
	if err != nil {
		logger.Error("server stopped with errors", zap.Error(err))
	}

	return err
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"accept",
			"authorization",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-type",
			"grpc-timeout",
			"origin",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"x-request-id",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	return corsOpts.Handler(mux)
}
