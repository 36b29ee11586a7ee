package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "phicoffee/internal/adapter/http/dto/response"
	"phicoffee/internal/usecase"
)

// ScheduleHandler serves the weekly order/delivery calendar.

type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

func (h *ScheduleHandler) GetWeeklySchedule(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromScheduleItems(h.usecase.Weekly()))
}
