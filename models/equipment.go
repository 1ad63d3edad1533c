// models/equipment.go
package models

import "time"

const EquipmentTable = "lcc_equipment"

// Equipment 一类器材（按数量管理，不是唯一件）
// Total 在入库后不变；Available 是冗余计数，只由借还流程增减，
// 任何时刻 available == total - 未归还记录数。
type Equipment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Category    string    `gorm:"size:100;index;not null" json:"category"`
	Description string    `gorm:"size:500" json:"description"`
	Total       int       `gorm:"not null" json:"total"`
	Available   int       `gorm:"not null" json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Equipment) TableName() string { return EquipmentTable }
