package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/wxsend/internal/domain"
	"github.com/aalvaropc/wxsend/internal/infra/envconfig"
	"github.com/aalvaropc/wxsend/internal/infra/httpclient"
	"github.com/aalvaropc/wxsend/internal/infra/logger"
	"github.com/aalvaropc/wxsend/internal/infra/webex"
	"github.com/aalvaropc/wxsend/internal/usecase"
)

type sendArgs struct {
	delivery domain.Delivery
	debug    bool
	envFile  string
}

func sendFile(cmd *cobra.Command, opts rootOptions, in sendArgs) error {
	if err := usecase.CheckFile(in.delivery.FilePath); err != nil {
		return err
	}

	if opts.environ == nil {
		if err := envconfig.LoadDotEnv(in.envFile); err != nil {
			return err
		}
	}

	cfg, err := envconfig.Load(opts.environ)
	if err != nil {
		return err
	}

	cleanup, err := logger.Setup(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Debug:  in.debug || cfg.Debug,
	})
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	log := logger.L().With("run_id", uuid.NewString())
	log.Debug("config.loaded",
		"token", cfg.MaskedToken(),
		"http_timeout", cfg.HTTPTimeout,
		"base_url", opts.baseURL)

	client := httpclient.New(httpclient.DefaultConfig().WithTimeout(cfg.HTTPTimeout))
	exec := httpclient.NewExecutor(
		httpclient.WithClient(client),
		httpclient.WithTimeout(cfg.HTTPTimeout),
	)

	api := webex.New(cfg.AccessToken,
		webex.WithBaseURL(opts.baseURL),
		webex.WithExecutor(exec),
		webex.WithLogger(log),
	)

	uc := usecase.NewSendFile(api, api, usecase.WithLogger(log))
	rcpt, err := uc.Execute(cmd.Context(), in.delivery)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "File sent to %s successfully.\n", rcpt.RecipientEmail)
	return nil
}
