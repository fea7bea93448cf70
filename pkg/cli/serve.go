package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/intellimed/scribe/pkg/cli/config"
	httpctrl "github.com/intellimed/scribe/pkg/controller/http"
	"github.com/intellimed/scribe/pkg/service/notegen"
	"github.com/intellimed/scribe/pkg/service/transcribe"
	"github.com/intellimed/scribe/pkg/usecase"
	"github.com/intellimed/scribe/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var openaiCfg config.OpenAI
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":3000",
			Sources:     cli.EnvVars("SCRIBE_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}

			ucOpts := []usecase.Option{
				usecase.WithTranscriber(transcribe.New(openaiCfg.ConfigureTranscriber())),
			}

			llmClient, err := openaiCfg.ConfigureLLM(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure OpenAI client")
			}
			if llmClient != nil {
				ucOpts = append(ucOpts, usecase.WithNoteGenerator(notegen.New(llmClient)))
				logging.Default().Info("OpenAI note generation enabled", "openai", openaiCfg)
			} else {
				logging.Default().Warn("OpenAI API key not configured, running in demo mode: uploads use the sample transcript and note generation is unavailable")
			}

			uc := usecase.New(repo, ucOpts...)

			handler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
