package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Bekfastjam/LocalBake/configs"
	"github.com/Bekfastjam/LocalBake/middlewares"
	"github.com/Bekfastjam/LocalBake/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if cfg.Seed {
		if err := configs.SeedData(); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB())

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
