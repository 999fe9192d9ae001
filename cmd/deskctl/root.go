package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deskkit/pkg/apiclient"
	"github.com/dmitrymomot/deskkit/pkg/config"
	"github.com/dmitrymomot/deskkit/pkg/logger"
	"github.com/dmitrymomot/deskkit/pkg/toast"
	"github.com/dmitrymomot/deskkit/pkg/tokenstore"
	"github.com/dmitrymomot/deskkit/svc/agents"
	"github.com/dmitrymomot/deskkit/svc/profile"
	"github.com/dmitrymomot/deskkit/svc/terms"
)

// tokenConfig reads the session token from the environment. An absent token
// simply means unauthenticated requests.
type tokenConfig struct {
	Token string `env:"API_TOKEN"`
}

// Shared state initialized by PersistentPreRunE for all subcommands.
var (
	log    *slog.Logger
	toasts *toast.Manager

	termsSvc   *terms.Service
	profileSvc *profile.Service
	agentsSvc  *agents.Service

	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:               "deskctl",
	Short:             "deskctl is a command-line client for the helpdesk backend",
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(agentsCmd)
}

func initServices(cmd *cobra.Command, args []string) error {
	opts := []logger.Option{
		logger.WithService("deskctl"),
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(os.Stderr),
	}
	if flagVerbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	log = logger.New(opts...)

	var apiCfg apiclient.Config
	if err := config.Load(&apiCfg); err != nil {
		return err
	}

	var tokCfg tokenConfig
	if err := config.Load(&tokCfg); err != nil {
		return err
	}

	client, err := apiclient.New(apiCfg,
		apiclient.WithTokenProvider(tokenstore.Static(tokCfg.Token)),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return err
	}

	toasts, err = toast.NewManager(toast.NewTerminalSurface(os.Stderr))
	if err != nil {
		return err
	}

	if termsSvc, err = terms.New(client); err != nil {
		return err
	}
	if profileSvc, err = profile.New(client); err != nil {
		return err
	}
	if agentsSvc, err = agents.New(client); err != nil {
		return err
	}

	return nil
}

// flushToasts gives pending toast transitions a moment to render before the
// process exits; a terminal surface prints on the visible flip, which is
// deferred by a frame.
func flushToasts() {
	time.Sleep(50 * time.Millisecond)
	toasts.Clear()
}
