package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"saude-connect/internal/app/api"
	"saude-connect/internal/app/config"
	"saude-connect/internal/app/drivers/database"
	"saude-connect/internal/app/drivers/logger"
	"saude-connect/internal/app/drivers/messaging"
	"saude-connect/internal/app/drivers/storage"
	"saude-connect/internal/pkg/exceptions"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	bootstrap *config.Bootstrap
	api       *api.API
}

func main() {
	app := &cli{}
	root := app.rootCommand()

	err := root.ExecuteContext(context.Background())
	app.shutdown()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "saude",
		Short:         "Saúde Connect API client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	root.AddCommand(
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.claimsCommand(),
		c.registerCommand(),
		c.searchCommand(),
		c.profileCommand(),
		c.adminCommand(),
		c.bookingsCommand(),
		c.versionCommand(),
	)
	return root
}

// setup is skipped when an API was already injected.
func (c *cli) setup() error {
	if c.api != nil {
		return nil
	}
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	c.bootstrap = &config.Bootstrap{
		Logger:         log,
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	saude, err := api.New(c.bootstrap, nil)
	if err != nil {
		log.Error("cli.setup failed", zap.Error(err))
		return err
	}
	c.api = saude
	return nil
}

func (c *cli) shutdown() {
	if c.bootstrap == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.bootstrap.Shutdown(ctx)
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.NewInternalConfig().App.Version)
			return nil
		},
	}
}

// reportedError marks failures already printed by fail.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// fail prints the user-facing message and the failure kind on stderr.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [%s]\n", exceptions.ClientMessage(err), exceptions.KindOf(err))
	return reportedError{err}
}
