// app/bootstrap.go
package app

import (
	"context"
	"log"

	"Gin_sports_equipment_portal/db"
	"Gin_sports_equipment_portal/models"

	"github.com/google/uuid"
)

// 默认器材清单，目录为空时种一次。Available 统一置为 Total，
// 保证台账和计数从一致状态出发。
var defaultCatalog = []models.Equipment{
	{Name: "Basketball", Category: "basketball", Description: "Standard basketball for practice and games", Total: 10},
	{Name: "Volleyball", Category: "volleyball", Description: "Competition volleyball", Total: 8},
	{Name: "Football", Category: "football", Description: "FIFA standard football", Total: 8},
	{Name: "Petanque ball (smooth)", Category: "petanque", Description: "Smooth-surface petanque ball", Total: 15},
	{Name: "Petanque ball (striped)", Category: "petanque", Description: "Striped petanque ball", Total: 10},
	{Name: "Badminton racket", Category: "badminton", Description: "Badminton racket with grip tape", Total: 12},
	{Name: "Shuttlecock tube", Category: "badminton", Description: "Tube of 6 feather shuttlecocks", Total: 20},
	{Name: "Table tennis paddle", Category: "table-tennis", Description: "Table tennis paddle, rubber both sides", Total: 16},
}

func SeedCatalog(ctx context.Context, cfg Config, repo *db.Repo) {
	if !cfg.SeedOnStart {
		return
	}
	n, err := repo.CountEquipment(ctx)
	if err != nil {
		log.Printf("seed: count equipment: %v", err)
		return
	}
	if n > 0 {
		return
	}

	for i := range defaultCatalog {
		eq := defaultCatalog[i]
		eq.ID = uuid.NewString()
		eq.Available = eq.Total
		if err := repo.CreateEquipment(ctx, &eq); err != nil {
			log.Printf("seed: create %q: %v", eq.Name, err)
			return
		}
	}
	log.Printf("[SEED] catalog was empty, seeded %d equipment items", len(defaultCatalog))
}
