package main

import (
	"fmt"
	"log"

	"access_gate/internal/config"
	"access_gate/internal/db"
	httpserver "access_gate/internal/http"
	"access_gate/internal/models"
	"access_gate/internal/seed"
	"access_gate/internal/token"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DSN)
	db.AutoMigrate(gdb,
		&models.Role{},
		&models.User{},
		&models.BusinessElement{},
		&models.AccessRule{},
	)

	if err := seed.FirstSetup(gdb, cfg.AdminPassword); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}

	codec := token.New(cfg.JWTSecret, cfg.TokenTTL)

	r := httpserver.NewRouter(gdb, codec, cfg.ExemptPaths)
	log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
	r.Run(fmt.Sprintf(":%s", cfg.AppPort))
}
