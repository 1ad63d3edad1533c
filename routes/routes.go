package routes

import (
	"Gin_sports_equipment_portal/app"
	"Gin_sports_equipment_portal/controllers"
	"time"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	ac := controllers.NewAuthController(s)
	uc := controllers.NewUserController(s)
	ec := controllers.NewEquipmentController(s)
	bc := controllers.NewBorrowController(s)

	// 复用的中间件
	authMW := app.AuthRequired(a.Config, a.AppSessions(), s.Repo)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// 认证（注册/登录公开，登出要带 token）
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/logout", authMW, ac.Logout)
	}

	// ------------------------------
	// 器材目录（公开浏览）
	// ------------------------------
	r.GET("/equipment", ec.List)

	// ------------------------------
	// 借还
	// ------------------------------
	borrow := r.Group("/borrow", authMW, seenMW)
	{
		borrow.POST("", bc.Borrow)
		borrow.GET("", bc.History) // ?status=borrowed|returned
		borrow.GET("/check", bc.Check)
		borrow.POST("/return", bc.Return)
	}

	// ------------------------------
	// 个人档案
	// ------------------------------
	user := r.Group("/user", authMW, seenMW)
	{
		user.GET("/profile", uc.GetProfile)
		user.PUT("/profile", uc.UpdateProfile)
	}
}
