package cli

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/product-api/internal/config"
	"github.com/Lixing-Zhang/product-api/internal/database"
	"github.com/Lixing-Zhang/product-api/pkg/logger"
)

func newInitDBCommand() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the product table",
		Long: `Create the product table in the configured database.

Run once before the first "productd serve", or set DATABASE_AUTO_MIGRATE=true.
Running it against an existing table is a no-op.`,
		RunE: initDBCommand,
	}

	cobraflags.RegisterMap(initCmd, configFlags)
	return initCmd
}

func initDBCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlags[configFlag].GetString())
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	scheme, err := database.Scheme(cfg.Database.URL)
	if err != nil {
		return err
	}
	if scheme == database.SchemeMemory {
		log.Info("memory database needs no initialization")
		return nil
	}

	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(cmd.Context(), db); err != nil {
		return fmt.Errorf("init-db: %w", err)
	}

	log.Info("product table ready", "database", scheme)
	return nil
}
