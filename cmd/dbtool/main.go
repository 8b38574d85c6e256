package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"logistics/cmd"
	"logistics/internal/adapters/in/cli"
	pgadapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := cli.NewRootCmd(connect).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dbtool:", err)
		os.Exit(1)
	}
}

func connect() (cli.Backend, error) {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return nil, err
	}
	logger, closeLog := cmd.SetupLogger(configs)

	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		closeLog.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		db.Close()
		closeLog.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	uowFactory := pgadapter.NewGormUnitOfWorkFactory(gormDB)
	wipe := commands.NewDeleteAllRoutesCommandHandler(
		cmd.FuncRouteUoWFactory(func() commands.RouteUoW { return uowFactory.Create() }),
		logger,
	)

	return &backend{db: db, wipe: &wipe, closeLog: closeLog.Close}, nil
}

type backend struct {
	db       *sql.DB
	wipe     *commands.DeleteAllRoutesCommandHandler
	closeLog func() error
}

func (b *backend) MigrateUp() error {
	return pgadapter.MigrateUp(b.db)
}

func (b *backend) MigrateDown() error {
	return pgadapter.MigrateDown(b.db)
}

func (b *backend) SchemaVersion() (uint, bool, error) {
	return pgadapter.SchemaVersion(b.db)
}

func (b *backend) DeleteAllRoutes(ctx context.Context) (int64, error) {
	return b.wipe.Handle(ctx, commands.NewDeleteAllRoutesCommand())
}

func (b *backend) Close() error {
	err := b.db.Close()
	b.closeLog()
	return err
}
