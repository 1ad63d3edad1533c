package db

import (
	"context"
	"testing"

	"Gin_sports_equipment_portal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	// 内存库是每个连接一份，锁死单连接
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(conn))
	return NewRepo(conn)
}

func seedUser(t *testing.T, r *Repo, email string) *models.User {
	t.Helper()
	u := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: "not-a-real-hash",
		Name:     "Test Student",
		Grade:    "M.5",
		Branch:   "Science-Math",
	}
	require.NoError(t, r.CreateUser(context.Background(), u))
	return u
}

func seedEquipment(t *testing.T, r *Repo, name string, total int) *models.Equipment {
	t.Helper()
	eq := &models.Equipment{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  "basketball",
		Total:     total,
		Available: total,
	}
	require.NoError(t, r.CreateEquipment(context.Background(), eq))
	return eq
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	seedUser(t, r, "dup@example.com")

	again := &models.User{
		ID:       uuid.NewString(),
		Email:    "dup@example.com",
		Password: "x",
		Name:     "Someone Else",
	}
	err := r.CreateUser(context.Background(), again)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindUserByEmail(t *testing.T) {
	r := newTestRepo(t)
	u := seedUser(t, r, "find@example.com")

	got, err := r.FindUserByEmail(context.Background(), "find@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = r.FindUserByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	r := newTestRepo(t)
	u := seedUser(t, r, "profile@example.com")

	got, err := r.UpdateUserProfile(context.Background(), u.ID, map[string]interface{}{
		"name":    "Renamed",
		"grade":   "M.6",
		"branch":  "Arts",
		"phone":   "0812345678",
		"address": "123 School Rd",
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, "M.6", got.Grade)
	require.Equal(t, "0812345678", got.Phone)
	// 凭据不受档案更新影响
	require.Equal(t, u.Password, got.Password)

	_, err = r.UpdateUserProfile(context.Background(), uuid.NewString(), map[string]interface{}{"name": "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListEquipmentByCategory(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedEquipment(t, r, "Basketball", 5)
	other := &models.Equipment{ID: uuid.NewString(), Name: "Volleyball", Category: "volleyball", Total: 3, Available: 3}
	require.NoError(t, r.CreateEquipment(ctx, other))

	all, err := r.ListEquipment(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	all, err = r.ListEquipment(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)

	vb, err := r.ListEquipment(ctx, "volleyball")
	require.NoError(t, err)
	require.Len(t, vb, 1)
	require.Equal(t, "Volleyball", vb[0].Name)

	none, err := r.ListEquipment(ctx, "tennis")
	require.NoError(t, err)
	require.Empty(t, none)
}
