package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/ndmitriev/authcore/internal/server"
	"github.com/ndmitriev/authcore/internal/server/config"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
