// migrate aplica o revierte el esquema de directorios en PostgreSQL.
//
// Uso: go run ./cmd/migrate [up|down]
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/zapshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/zapshop-api/pkg/config"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(cfg.DB.ConnectionString(), direction); err != nil {
		fmt.Fprintf(os.Stderr, "Migrar %s: %v\n", direction, err)
		os.Exit(1)
	}
	fmt.Printf("Migraciones %s aplicadas\n", direction)
}
