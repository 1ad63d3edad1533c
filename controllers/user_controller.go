package controllers

import (
	"errors"
	"net/http"

	"Gin_sports_equipment_portal/app"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /user/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := uc.Repo.FindUserByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /user/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		Grade   string `json:"grade" binding:"required"`
		Branch  string `json:"branch" binding:"required"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	uid := c.GetString("userID")
	u, err := uc.Repo.UpdateUserProfile(c.Request.Context(), uid, map[string]interface{}{
		"name":    in.Name,
		"grade":   in.Grade,
		"branch":  in.Branch,
		"phone":   in.Phone,
		"address": in.Address,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.H{"message": "profile updated", "user": u})
}
