// seed carga clientes y staff desde un JSON en PostgreSQL.
//
// Uso: go run ./cmd/seed [ruta/directorio.json]
// Por defecto busca directorio.json en el directorio actual. Los emails ya existentes se omiten.
// El mismo archivo sirve como SEED_FILE para el driver en memoria de cmd/api.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/zapshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/seed"
	"github.com/jhoicas/zapshop-api/pkg/config"
)

func main() {
	path := "directorio.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := seed.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	res, err := seed.Apply(ctx, f, postgres.NewCustomerRepository(pool), postgres.NewUserRepository(pool), cfg.Auth.AvatarBaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Creados: %d, omitidos (email existente): %d\n", res.Created, res.Skipped)
}
