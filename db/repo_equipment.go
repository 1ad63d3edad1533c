package db

import (
	"context"

	"Gin_sports_equipment_portal/models"
)

// Equipment

func (r *Repo) CreateEquipment(ctx context.Context, eq *models.Equipment) error {
	return r.DB.WithContext(ctx).Create(eq).Error
}

func (r *Repo) FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).First(&eq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

// ListEquipment category 为空或 "all" 时返回全部
func (r *Repo) ListEquipment(ctx context.Context, category string) ([]models.Equipment, error) {
	q := r.DB.WithContext(ctx)
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	var items []models.Equipment
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) CountEquipment(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Equipment{}).Count(&n).Error
	return n, err
}
