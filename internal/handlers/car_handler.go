package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httpresp"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

type CarHandler struct {
	db *gorm.DB
}

func NewCarHandler(db *gorm.DB) *CarHandler {
	return &CarHandler{db: db}
}

// ======================================================
// LIST CARS
// ======================================================
func (h *CarHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	// filtro por categoria de frota (vans, suvs, blindados, executivo)
	if cat := c.Query("categoria"); cat != "" {
		q = q.Where("categoria = ?", cat)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var cars []models.Car
	if err := q.Order("created_at DESC").Find(&cars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_cars"})
		return
	}

	c.JSON(http.StatusOK, cars)
}

// ======================================================
// CREATE CAR
// ======================================================

type CreateCarRequest struct {
	Placa     string `json:"placa" binding:"required"`
	Modelo    string `json:"modelo" binding:"required"`
	Categoria string `json:"categoria" binding:"required"`
	Ano       int    `json:"ano" binding:"required"`
}

func (h *CarHandler) Create(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if !validCategory(req.Categoria) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
		return
	}

	car := models.Car{
		Placa:     strings.ToUpper(strings.TrimSpace(req.Placa)),
		Modelo:    req.Modelo,
		Categoria: req.Categoria,
		Ano:       req.Ano,
		Status:    models.CarStatusActive,
	}

	if err := h.db.Create(&car).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_car"})
		return
	}

	httpresp.Created(c, car)
}

// ======================================================
// UPDATE STATUS (ativo / inativo / manutencao)
// ======================================================

type UpdateCarStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *CarHandler) UpdateStatus(c *gin.Context) {
	var req UpdateCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	switch req.Status {
	case models.CarStatusActive, models.CarStatusInactive, models.CarStatusMaintenance:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	res := h.db.Model(&models.Car{}).
		Where("id = ?", c.Param("id")).
		Update("status", req.Status)

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_car"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "car_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func validCategory(cat string) bool {
	for _, c := range models.CarCategories {
		if c == cat {
			return true
		}
	}
	return false
}
