package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/adspend-backend/pkg/config"
	"github.com/angelmondragon/adspend-backend/pkg/db"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
	"go.uber.org/multierr"
)

// MaybeRunDev applies migrations at startup when running in dev with auto-migrate enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, opener *db.Opener) (err error) {
	if !cfg.App.IsDev() || !cfg.DB.AutoMigrate {
		return nil
	}

	client, err := opener.Open(ctx, db.ReadWrite)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		err = multierr.Append(err, client.Close())
	}()

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": cfg.DB.Driver})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, cfg.DB.Driver, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
