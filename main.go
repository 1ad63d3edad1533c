package main

import (
	"Gin_sports_equipment_portal/app"
	"Gin_sports_equipment_portal/config"
	"Gin_sports_equipment_portal/db"
	"Gin_sports_equipment_portal/routes"
	"context"
	"log"
	"os"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	// 目录为空时种默认器材
	app.SeedCatalog(context.Background(), application.Config, db.NewRepo(application.DB))

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
