package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/configs"
	"github.com/tsionbantegize16/woinucoffee-web-design/middlewares"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedSettings(); err != nil {
		log.Fatalf("seed settings failed: %v", err)
	}

	// object storage for uploaded images
	store := storage.NewStore(cfg.UploadDir, cfg.BaseURL)

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
