// cmd/devtoken/main.go: prints a Bearer token for local testing of /v1/estadisticas.
// Uso: JWT_SECRET=... go run ./cmd/devtoken -rol supervisor
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/config"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/middleware"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rol := flag.String("rol", middleware.RolSupervisor, "rol del token (cajero | supervisor | administrador)")
	username := flag.String("username", "dev", "username embebido en el token")
	ttl := flag.Duration("ttl", 8*time.Hour, "vigencia del token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	token, err := middleware.SignToken(cfg.JWTSecret, middleware.JWTClaims{
		UserID:   uuid.NewString(),
		Username: *username,
		Rol:      *rol,
	}, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign token")
	}
	fmt.Println(token)
}
