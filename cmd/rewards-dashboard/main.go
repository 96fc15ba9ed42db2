package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/diillson/rewards-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/rewards-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/rewards-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/rewards-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/rewards-dashboard-go/internal/application/usecase"
	"github.com/diillson/rewards-dashboard-go/internal/domain/repository"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/diillson/rewards-dashboard-go/pkg/console"
	"github.com/diillson/rewards-dashboard-go/pkg/logger"
	"github.com/diillson/rewards-dashboard-go/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	// .env opcional com os padrões REWARDS_* das flags
	_ = godotenv.Load()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)
	app.SetUseCaseFactory(func(log *logger.Logger, args *types.CLIArgs) *usecase.RewardsUseCase {
		sourceRepo := source.NewTransactionRepository(
			source.WithLogger(log),
			source.WithAWSProfile(args.AWSProfile),
		)
		return usecase.NewRewardsUseCase(sourceRepo, exportRepo, consoleImpl, log)
	})
	app.SetStoreOpener(func(path string) (repository.TransactionStore, error) {
		store, err := source.OpenSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Executa o aplicativo
	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
