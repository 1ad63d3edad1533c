// controllers/borrow_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"Gin_sports_equipment_portal/app"
	"Gin_sports_equipment_portal/db"
	"Gin_sports_equipment_portal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

// POST /borrow
func (bc *BorrowController) Borrow(c *gin.Context) {
	var in struct {
		EquipmentID string `json:"equipmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "equipmentId required"})
		return
	}
	uid := c.GetString("userID")

	rec, err := bc.Repo.BorrowEquipment(c.Request.Context(), uid, in.EquipmentID)
	switch {
	case errors.Is(err, db.ErrBorrowLimit):
		c.JSON(http.StatusBadRequest, app.H{"error": "you cannot borrow more than 2 items"})
		return
	case errors.Is(err, db.ErrNotAvailable):
		c.JSON(http.StatusBadRequest, app.H{"error": "equipment not available"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "equipment not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.H{
		"message":    "equipment borrowed",
		"recordId":   rec.ID,
		"returnDate": rec.ReturnDate,
	})
}

// POST /borrow/return
func (bc *BorrowController) Return(c *gin.Context) {
	var in struct {
		BorrowRecordID string `json:"borrowRecordId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "borrowRecordId required"})
		return
	}
	uid := c.GetString("userID")

	if _, err := bc.Repo.ReturnBorrow(c.Request.Context(), uid, in.BorrowRecordID); err != nil {
		if errors.Is(err, db.ErrBorrowNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "no matching borrow record"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "equipment returned"})
}

// GET /borrow/check
func (bc *BorrowController) Check(c *gin.Context) {
	n, err := bc.Repo.CountActiveBorrows(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"borrowedCount": n})
}

type historyRow struct {
	ID               string     `json:"id"`
	EquipmentID      string     `json:"equipmentId"`
	EquipmentName    string     `json:"equipmentName"`
	BorrowDate       time.Time  `json:"borrowDate"`
	ReturnDate       time.Time  `json:"returnDate"`
	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty"`
	Status           string     `json:"status"`
}

// GET /borrow?status=borrowed|returned
// 每条补上器材名；器材被删则降级为占位名，不让整个列表失败。
// overdue 每次读取时重算，不落库。
func (bc *BorrowController) History(c *gin.Context) {
	uid := c.GetString("userID")
	recs, err := bc.Repo.ListBorrows(c.Request.Context(), uid, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	rows := make([]historyRow, 0, len(recs))
	for _, r := range recs {
		name := "Unknown equipment"
		if eq, err := bc.Repo.FindEquipmentByID(c.Request.Context(), r.EquipmentID); err == nil {
			name = eq.Name
		}
		status := r.Status
		if status == models.StatusBorrowed && now.After(r.ReturnDate) {
			status = models.StatusOverdue
		}
		rows = append(rows, historyRow{
			ID:               r.ID,
			EquipmentID:      r.EquipmentID,
			EquipmentName:    name,
			BorrowDate:       r.BorrowDate,
			ReturnDate:       r.ReturnDate,
			ActualReturnDate: r.ActualReturnDate,
			Status:           status,
		})
	}
	c.JSON(http.StatusOK, rows)
}
