package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"steamlens/cache"
	"steamlens/config"
	"steamlens/profile"
	"steamlens/rates"
	"steamlens/routes"
	"steamlens/steam"
)

func main() {

	if err := godotenv.Load(); err != nil {
		fmt.Println(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfg.Steam.APIKey == "" {
		fmt.Println("A value for STEAM_API_KEY must be provided")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	}))
	slog.SetDefault(logger)

	var store cache.Store
	if cfg.Cache.Backend == "redis" {
		store = cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	} else {
		store = cache.NewMemory()
	}

	svc := profile.New(steam.NewClient(cfg.Steam.APIKey), store, rates.Default())

	router := routes.Register(http.NewServeMux(), svc)

	fmt.Printf("Steamlens is running at http://localhost:%s\n", cfg.Server.Port)

	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
