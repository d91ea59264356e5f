package main

import (
	"context"
	"log/slog"
	"os"

	"magichat/config"
	"magichat/internal/delivery"
	"magichat/internal/delivery/api"
	"magichat/internal/delivery/api/router/handler"
	"magichat/internal/domain/lifecycle"
	logs "magichat/internal/infra/log"
	"magichat/internal/infra/persistence/postgres"
	"magichat/internal/infra/steam"
	"magichat/internal/usecase"
	"magichat/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	app := cli.NewApp()
	app.Name = "magichat"
	app.Usage = "Steam Magic Hat API"
	app.Action = serve
	app.Commands = []*cli.Command{
		{
			Action:      serve,
			Name:        "serve",
			Usage:       "Start the HTTP API",
			Category:    "Api",
			Description: `Serves the steam users, games and ownership API until interrupted.`,
		},
		{
			Action:      migrateDB,
			Name:        "migrate",
			Usage:       "Apply pending database migrations",
			Category:    "Database",
			Description: `Runs every embedded SQL migration that has not been applied yet.`,
		},
		{
			Action:      importUser,
			Name:        "import",
			Usage:       "Import a steam user and its owned games",
			ArgsUsage:   "<steam_id>",
			Category:    "Database",
			Description: `Fetches the profile and library of one steam id and stores them, as POST /steam_users does.`,
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func serve(_ *cli.Context) error {
	fx.New(
		appOptions(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()

	return nil
}

func migrateDB(cctx *cli.Context) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return runOnce(cctx.Context, fx.Populate(&db, &logger), func(_ context.Context) error {
		return postgres.Migrate(db, logger)
	})
}

func importUser(cctx *cli.Context) error {
	steamID := cctx.Args().First()
	if steamID == "" {
		return errors.New("steam id argument is required")
	}

	var (
		steamUserUC usecase.SteamUserUsecase
		logger      *slog.Logger
	)

	return runOnce(cctx.Context, fx.Populate(&steamUserUC, &logger), func(ctx context.Context) error {
		user, err := steamUserUC.ImportUser(ctx, steamID)
		if err != nil {
			return err
		}

		logger.Info("Imported steam user",
			slog.String("steam_id", user.SteamID),
			slog.String("username", user.Username),
		)

		return nil
	})
}

// runOnce starts the infrastructure, runs fn and stops everything again.
func runOnce(ctx context.Context, populate fx.Option, fn func(ctx context.Context) error) error {
	app := fx.New(
		appOptions(),
		populate,
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSteamUserRepository,
			postgres.NewSteamGameRepository,
			postgres.NewOwnedGameRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			steam.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSteamUserService,
			impl.NewSteamGameService,
			impl.NewOwnedGameService,
			impl.NewSharedGameService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSteamUserHandler,
			handler.NewSteamGameHandler,
			handler.NewOwnedGameHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
