package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httpresp"
	"github.com/gustavovieirarodrigues/taxi-management/internal/middleware"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
	ucRide "github.com/gustavovieirarodrigues/taxi-management/internal/usecase/ride"
)

// ======================================================
// HANDLER
// ======================================================

type RideHandler struct {
	createUC      *ucRide.CreateRide
	assignUC      *ucRide.AssignDriver
	completeUC    *ucRide.CompleteRide
	cancelUC      *ucRide.CancelRide
	refuseUC      *ucRide.RefuseRide
	deleteUC      *ucRide.DeleteRide
	listByDateUC  *ucRide.ListRidesByDate
	listByMonthUC *ucRide.ListRidesByMonth
	monthGridUC   *ucRide.MonthGrid
	tz            string
}

func NewRideHandler(
	createUC *ucRide.CreateRide,
	assignUC *ucRide.AssignDriver,
	completeUC *ucRide.CompleteRide,
	cancelUC *ucRide.CancelRide,
	refuseUC *ucRide.RefuseRide,
	deleteUC *ucRide.DeleteRide,
	listByDateUC *ucRide.ListRidesByDate,
	listByMonthUC *ucRide.ListRidesByMonth,
	monthGridUC *ucRide.MonthGrid,
	tz string,
) *RideHandler {
	return &RideHandler{
		createUC:      createUC,
		assignUC:      assignUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		refuseUC:      refuseUC,
		deleteUC:      deleteUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		monthGridUC:   monthGridUC,
		tz:            tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRideRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DriverID    string `json:"driver_id"`
	CarID       string `json:"car_id"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

type CompleteRideRequest struct {
	Observation string `json:"observation"`
}

type CancelRideRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// HELPERS
// ======================================================

// motorista sempre enxerga só as próprias corridas; gerente pode
// filtrar por motorista via query
func (h *RideHandler) scopeDriver(c *gin.Context) *string {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == models.RoleDriver {
		return &userID
	}

	if q := c.Query("driver_id"); q != "" {
		return &q
	}
	return nil
}

func ascendingOrder(c *gin.Context) bool {
	// "desc" é a visão de histórico; o padrão é a visão de próximas
	return c.DefaultQuery("order", "asc") != "desc"
}

func (h *RideHandler) fail(c *gin.Context, err error) {
	if httperr.Business(c, err) {
		return
	}
	httperr.Internal(c, "internal_error", "Erro interno.")
}

// ======================================================
// CREATE
// ======================================================

func (h *RideHandler) Create(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), ucRide.CreateRideInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		DriverID:    req.DriverID,
		CarID:       req.CarID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ======================================================
// LIST
// ======================================================

func (h *RideHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	rides, err := h.listByDateUC.Execute(
		c.Request.Context(),
		h.scopeDriver(c),
		date,
		ascendingOrder(c),
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.List(c, rides)
}

func (h *RideHandler) ListByMonth(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	rides, err := h.listByMonthUC.Execute(
		c.Request.Context(),
		h.scopeDriver(c),
		year,
		month,
		ascendingOrder(c),
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":  year,
		"month": month,
		"rides": rides,
	})
}

// Calendar devolve a grade mensal; sem parâmetros a referência volta
// para o mês corrente (botão "Hoje")
func (h *RideHandler) Calendar(c *gin.Context) {
	now := timezone.NowIn(h.tz)

	year := now.Year()
	month := int(now.Month())

	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 2000 || y > 2100 {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		year = y
	}
	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}
		month = m
	}

	grid, err := h.monthGridUC.Execute(
		c.Request.Context(),
		h.scopeDriver(c),
		year,
		month,
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.OK(c, grid)
}

func yearMonthParams(c *gin.Context) (int, int, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return 0, 0, false
	}

	return year, month, true
}

// Statuses devolve o vocabulário de status com rótulo e cor de badge;
// as telas nunca mantêm essa tabela localmente
func (h *RideHandler) Statuses(c *gin.Context) {
	out := make([]gin.H, 0, len(domainRideStatuses))
	for _, s := range domainRideStatuses {
		out = append(out, gin.H{
			"value": s,
			"label": ride.Labels[s],
			"color": ride.Colors[s],
		})
	}
	httpresp.OK(c, out)
}

var domainRideStatuses = []ride.Status{
	ride.StatusPending,
	ride.StatusAssigned,
	ride.StatusInProgress,
	ride.StatusCompleted,
	ride.StatusCancelled,
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *RideHandler) Assign(c *gin.Context) {
	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	r, err := h.assignUC.Execute(c.Request.Context(), c.Param("id"), req.DriverID)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *RideHandler) Complete(c *gin.Context) {
	driverID := c.MustGet(middleware.ContextUserID).(string)

	var req CompleteRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Observation = ""
	}

	r, err := h.completeUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		driverID,
		req.Observation,
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *RideHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CancelRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Reason = ""
	}

	r, err := h.cancelUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		userID,
		role,
		req.Reason,
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *RideHandler) Refuse(c *gin.Context) {
	driverID := c.MustGet(middleware.ContextUserID).(string)

	r, err := h.refuseUC.Execute(c.Request.Context(), c.Param("id"), driverID)
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *RideHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(200, gin.H{"deleted": true})
}
