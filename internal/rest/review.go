package rest

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"myLaptopHub/business/review"
	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetReviewsByLaptop(ctx context.Context, laptopID uint64) ([]domain.Review, error)
	ImportCSV(ctx context.Context, r io.Reader) (review.ImportSummary, error)
}

type ReviewHandler struct {
	reviewService ReviewService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
		timeout:       30 * time.Second,
	}
}

type CreateReviewRequest struct {
	LaptopID      uint64 `json:"laptop_id" validate:"required"`
	ResponderName string `json:"responder_name" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review        string `json:"review" validate:"required"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate review request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.reviewService.CreateReview(ctx, &domain.Review{
		LaptopID:      req.LaptopID,
		ResponderName: req.ResponderName,
		Rating:        req.Rating,
		Review:        req.Review,
	})
	if err != nil {
		logger.Error("failed to create review", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be") {
			return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *ReviewHandler) GetReviewsByLaptop(c echo.Context) error {
	laptopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("invalid laptop id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewService.GetReviewsByLaptop(ctx, laptopID)
	if err != nil {
		logger.Error("failed to get reviews", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reviews))
}

// ImportReviews ingests a survey export. The file comes as multipart
// form field "file".
func (h *ReviewHandler) ImportReviews(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Error("missing import file", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("import file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to open import file", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("failed to open import file"))
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.reviewService.ImportCSV(ctx, file)
	if err != nil {
		logger.Error("review import failed", err)
		if strings.Contains(err.Error(), "invalid import file") {
			return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
