package db

import (
	"context"
	"errors"
	"time"

	"Gin_sports_equipment_portal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 借用规则：每人同时最多 2 件，借期 7 天
const (
	BorrowLimit  = 2
	BorrowPeriod = 7 * 24 * time.Hour
)

var (
	ErrBorrowLimit    = errors.New("borrow limit reached")
	ErrNotAvailable   = errors.New("equipment not available")
	ErrBorrowNotFound = errors.New("borrow record not found")
)

// BorrowEquipment 借出：事务 = 查器材 → 校验上限 → 条件扣减 available → 建台账
// 扣减用 "available > 0" 做守卫并检查影响行数，并发下也不会超借。
func (r *Repo) BorrowEquipment(ctx context.Context, userID, equipmentID string) (*models.BorrowRecord, error) {
	var rec *models.BorrowRecord
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq models.Equipment
		if err := tx.First(&eq, "id = ?", equipmentID).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&models.BorrowRecord{}).
			Where("user_id = ? AND status = ?", userID, models.StatusBorrowed).
			Count(&n).Error; err != nil {
			return err
		}
		if n >= BorrowLimit {
			return ErrBorrowLimit
		}

		res := tx.Model(&models.Equipment{}).
			Where("id = ? AND available > 0", equipmentID).
			Update("available", gorm.Expr("available - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotAvailable
		}

		now := time.Now().UTC()
		l := &models.BorrowRecord{
			ID:          uuid.NewString(),
			UserID:      userID,
			EquipmentID: equipmentID,
			BorrowDate:  now,
			ReturnDate:  now.Add(BorrowPeriod),
			Status:      models.StatusBorrowed,
		}
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		rec = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ReturnBorrow 归还：必须是本人且未归还的记录，否则统一返回 ErrBorrowNotFound
// （不区分“别人的 / 已还 / 不存在”，避免泄露具体原因）。
func (r *Repo) ReturnBorrow(ctx context.Context, userID, recordID string) (*models.BorrowRecord, error) {
	var rec models.BorrowRecord
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, "id = ? AND user_id = ? AND status = ?",
			recordID, userID, models.StatusBorrowed).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBorrowNotFound
			}
			return err
		}

		now := time.Now().UTC()
		rec.Status = models.StatusReturned
		rec.ActualReturnDate = &now
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		// "available < total" 守卫：计数永远不会被加到容量之上
		return tx.Model(&models.Equipment{}).
			Where("id = ? AND available < total", rec.EquipmentID).
			Update("available", gorm.Expr("available + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repo) CountActiveBorrows(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.BorrowRecord{}).
		Where("user_id = ? AND status = ?", userID, models.StatusBorrowed).
		Count(&n).Error
	return n, err
}

// ListBorrows 某用户的台账，最近借出的在前；status 可选 borrowed / returned
func (r *Repo) ListBorrows(ctx context.Context, userID, status string) ([]models.BorrowRecord, error) {
	q := r.DB.WithContext(ctx).Model(&models.BorrowRecord{}).
		Where("user_id = ?", userID).
		Order("borrow_date DESC")
	if status == models.StatusBorrowed || status == models.StatusReturned {
		q = q.Where("status = ?", status)
	}
	var recs []models.BorrowRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
