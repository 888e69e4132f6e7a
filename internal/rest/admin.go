package rest

import (
	"context"
	"net/http"
	"time"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type StatsService interface {
	GetAdminStats(ctx context.Context) (*domain.AdminStats, error)
}

type AdminHandler struct {
	statsService StatsService
	timeout      time.Duration
}

func NewAdminHandler(statsService StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		timeout:      10 * time.Second,
	}
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.statsService.GetAdminStats(ctx)
	if err != nil {
		logger.Error("failed to build admin stats", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}
