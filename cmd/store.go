package main

import (
	"context"
	"fmt"

	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/245124737105-sketch/PolyglotPal/internal/repository"
	"github.com/245124737105-sketch/PolyglotPal/internal/repository/mongorepo"
	"github.com/245124737105-sketch/PolyglotPal/internal/service"
	"github.com/245124737105-sketch/PolyglotPal/internal/storage/db"
	"go.uber.org/zap"
)

// openStore connects to the configured backend and prepares its schema.
// The returned func releases the connection.
func openStore(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (service.RepositoryI, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err := db.InitDB(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}

		log.Info("using postgres store", zap.String("host", cfg.Postgres.Conn.Host), zap.String("db", cfg.Postgres.Conn.Name))
		return repository.NewRepository(conn), func() { conn.Close() }, nil

	case config.DriverMongo:
		client, database, err := db.InitMongo(cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		if err := db.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}

		log.Info("using mongo store", zap.String("db", cfg.Mongo.Database))
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("failed disconnect mongo", zap.Error(err))
			}
		}
		return mongorepo.NewRepository(database), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
