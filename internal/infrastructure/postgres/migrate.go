package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/guardiao/guardiao-api/migrations"
	"github.com/guardiao/guardiao-api/pkg/config"
)

// RunMigrations aplica as migrações embutidas quando habilitado na configuração.
// Uma base já atualizada (ErrNoChange) não é erro.
func RunMigrations(cfg config.DBConfig) error {
	if !cfg.AutoMigrate {
		return nil
	}

	src, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("carregar migrações: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir migrador: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migrações: %w", err)
	}
	return nil
}
