// models/borrow_record.go
package models

import "time"

const BorrowRecordTable = "lcc_borrow_records"

const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
	// StatusOverdue 只在展示时计算（status=borrowed 且已过 returnDate），不落库
	StatusOverdue = "overdue"
)

// BorrowRecord 借还台账，borrowed → returned 是唯一的状态迁移
type BorrowRecord struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string `gorm:"type:uuid;index:idx_lcc_borrow_user_status;not null" json:"userId"`
	EquipmentID string `gorm:"type:uuid;index:idx_lcc_borrow_equipment_status;not null" json:"equipmentId"`

	BorrowDate time.Time `gorm:"index;not null" json:"borrowDate"`
	// ReturnDate 应还日期 = borrowDate + 7 天
	ReturnDate       time.Time  `gorm:"not null" json:"returnDate"`
	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty"`

	Status string `gorm:"size:20;index:idx_lcc_borrow_user_status;index:idx_lcc_borrow_equipment_status;not null;default:'borrowed'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BorrowRecord) TableName() string { return BorrowRecordTable }
