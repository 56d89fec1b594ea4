// Importador del historial de compras: aplica migraciones y carga las
// exportaciones CSV de IMPORT_DATA_DIR en PostgreSQL, reemplazando los datos
// anteriores. Pensado para correrse cada vez que llega una exportación nueva.
package main

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/infrastructure/importer"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().Str("data_dir", cfg.Import.DataDir).Msg("iniciando importación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	counts, err := importer.New(pool, log).Run(ctx, cfg.Import.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("importación")
	}

	log.Info().
		Int64("retail_orders", counts.RetailOrders).
		Int64("digital_items", counts.DigitalItems).
		Int64("returns", counts.Returns).
		Int64("cart_items", counts.CartItems).
		Msg("importación completa")
}
