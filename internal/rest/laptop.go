package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type LaptopService interface {
	GetAllLaptops(ctx context.Context) ([]domain.Laptop, error)
	GetLaptopDetail(ctx context.Context, id uint64) (*domain.LaptopDetail, error)
	CreateLaptop(ctx context.Context, brandName string, laptop *domain.Laptop) (*domain.Laptop, error)
	UpdateLaptop(ctx context.Context, brandName string, laptop *domain.Laptop) (*domain.Laptop, error)
	DeleteLaptop(ctx context.Context, id uint64) error
	GetAllBrands(ctx context.Context) ([]domain.Brand, error)
}

type ClickService interface {
	RecordClick(ctx context.Context, userID, laptopID uint64) error
}

type LaptopHandler struct {
	laptopService LaptopService
	clickService  ClickService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewLaptopHandler(laptopService LaptopService, clickService ClickService) *LaptopHandler {
	return &LaptopHandler{
		laptopService: laptopService,
		clickService:  clickService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type LaptopRequest struct {
	Brand       string  `json:"brand" validate:"required"`
	Series      string  `json:"series"`
	Model       string  `json:"model" validate:"required"`
	CPU         string  `json:"cpu"`
	GPU         string  `json:"gpu"`
	RAM         string  `json:"ram"`
	Storage     string  `json:"storage"`
	Display     string  `json:"display"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

func (req *LaptopRequest) toDomain() *domain.Laptop {
	return &domain.Laptop{
		Series:      req.Series,
		Model:       req.Model,
		CPU:         req.CPU,
		GPU:         req.GPU,
		RAM:         req.RAM,
		Storage:     req.Storage,
		Display:     req.Display,
		Description: req.Description,
		Price:       req.Price,
	}
}

func (h *LaptopHandler) GetAllLaptops(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	laptops, err := h.laptopService.GetAllLaptops(ctx)
	if err != nil {
		logger.Error("failed to get all laptops", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(laptops))
}

// GetLaptopByID returns the detail page payload. Viewing a detail as a
// logged-in customer counts as a click against the laptop's brand.
func (h *LaptopHandler) GetLaptopByID(c echo.Context) error {
	laptopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("invalid laptop id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.laptopService.GetLaptopDetail(ctx, laptopID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	if userID := userIDFromContext(c); userID != 0 {
		if role, _ := c.Get("role").(string); !strings.EqualFold(role, "admin") {
			if err := h.clickService.RecordClick(ctx, userID, laptopID); err != nil {
				logger.Warn("failed to record detail view click", err)
			}
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(detail))
}

func (h *LaptopHandler) CreateLaptop(c echo.Context) error {
	var req LaptopRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate laptop request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.laptopService.CreateLaptop(ctx, req.Brand, req.toDomain())
	if err != nil {
		logger.Error("failed to create laptop", err)
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be") {
			return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *LaptopHandler) UpdateLaptop(c echo.Context) error {
	laptopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("invalid laptop id"))
	}

	var req LaptopRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate laptop request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	laptop := req.toDomain()
	laptop.ID = laptopID

	updated, err := h.laptopService.UpdateLaptop(ctx, req.Brand, laptop)
	if err != nil {
		logger.Error("failed to update laptop", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be") {
			return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *LaptopHandler) DeleteLaptop(c echo.Context) error {
	laptopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("invalid laptop id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.laptopService.DeleteLaptop(ctx, laptopID); err != nil {
		logger.Error("failed to delete laptop", err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("laptop successfully deleted"))
}

func (h *LaptopHandler) GetAllBrands(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	brands, err := h.laptopService.GetAllBrands(ctx)
	if err != nil {
		logger.Error("failed to get all brands", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(brands))
}

// RecordClick is the explicit click endpoint used by the web client
// when a card is opened without navigating to the detail page.
func (h *LaptopHandler) RecordClick(c echo.Context) error {
	laptopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("invalid laptop id"))
	}

	userID := userIDFromContext(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "login required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.clickService.RecordClick(ctx, userID, laptopID); err != nil {
		logger.Error("failed to record click", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("click recorded"))
}
