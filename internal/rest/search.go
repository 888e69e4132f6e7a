package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"
	"myLaptopHub/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type SearchService interface {
	Search(ctx context.Context, userID uint64, rawQuery string) (*domain.SearchResponse, error)
	ForYou(ctx context.Context, userID uint64, limit int) (*domain.SearchResponse, error)
}

type SearchHandler struct {
	searchService SearchService
	timeout       time.Duration
}

func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		timeout:       10 * time.Second,
	}
}

// userIDFromContext reads the id set by the auth middleware, zero for
// anonymous requests.
func userIDFromContext(c echo.Context) uint64 {
	if id, ok := c.Get("user_id").(uint64); ok {
		return id
	}
	return 0
}

// resultLimit parses the optional n query param, zero when absent.
func resultLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("n")
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid n")
	}
	return n, nil
}

func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("query parameter is required"))
	}

	n, err := resultLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	resp, err := h.searchService.Search(ctx, userIDFromContext(c), query)
	if err != nil {
		logger.Error("search failed", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}
	metrics.SearchLatency.Observe(time.Since(start).Seconds())

	if n > 0 && n < len(resp.Results) {
		resp.Results = resp.Results[:n]
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

func (h *SearchHandler) ForYou(c echo.Context) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "login required"})
	}

	n, err := resultLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	resp, err := h.searchService.ForYou(ctx, userID, n)
	if err != nil {
		logger.Error("feed failed", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}
