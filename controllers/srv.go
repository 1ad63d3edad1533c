// controllers/srv.go
package controllers

import (
	"context"

	"Gin_sports_equipment_portal/app"
	"Gin_sports_equipment_portal/db"
	"Gin_sports_equipment_portal/models"
	"Gin_sports_equipment_portal/session"
)

type Srv struct {
	Repo    *db.Repo
	AppSess *session.AppSessionStore
	Cfg     app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:    db.NewRepo(a.DB),
		AppSess: a.AppSessions(),
		Cfg:     a.Config,
	}
}

// --- helpers ---

// 登录成功：签 token + 登记 Redis 会话 + 触发登录快照
func (s *Srv) issueToken(ctx context.Context, u *models.User) (string, error) {
	token, claims, err := session.MintToken(s.Cfg.JWTSecret, s.Cfg.SessionTTL, u)
	if err != nil {
		return "", err
	}
	if s.AppSess != nil {
		if err := s.AppSess.Create(ctx, claims.ID, u.ID); err != nil {
			return "", err
		}
	}
	if err := s.Repo.TouchUserLogin(ctx, u.ID); err != nil {
		// 不阻塞
	}
	return token, nil
}
