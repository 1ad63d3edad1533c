package models

import "time"

const UserTable = "lcc_users"

// User 学生账号：email 唯一，密码只存 bcrypt 哈希，绝不出现在 JSON 里
type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Grade   string `gorm:"size:50" json:"grade"`
	Branch  string `gorm:"size:100" json:"branch"`
	Phone   string `gorm:"size:30" json:"phone,omitempty"`
	Address string `gorm:"size:255" json:"address,omitempty"`

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
