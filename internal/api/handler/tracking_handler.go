package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

const dateLayout = "2006-01-02"

// TrackingDispatcher runs a batch of tracking queries concurrently.
type TrackingDispatcher interface {
	Track(ctx context.Context, queries []ports.TrackingQuery) ([]ports.TrackingResult, error)
}

// TrackingHandler serves single and batch tracking lookups.
type TrackingHandler struct {
	service    ports.CarrierService
	dispatcher TrackingDispatcher
	maxBatch   int
}

// NewTrackingHandler creates a TrackingHandler. maxBatch <= 0 disables the
// batch size limit.
func NewTrackingHandler(service ports.CarrierService, dispatcher TrackingDispatcher, maxBatch int) *TrackingHandler {
	return &TrackingHandler{service: service, dispatcher: dispatcher, maxBatch: maxBatch}
}

// Get handles GET /v1/tracking/:tracking_number.
//
// @Summary      Track a package
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true   "Package identifier"
// @Param        type             query     string  false  "Identifier type (e.g. tracking_number, customer_reference)"
// @Param        begin            query     string  false  "Ship date range begin (YYYY-MM-DD)"
// @Param        end              query     string  false  "Ship date range end (YYYY-MM-DD)"
// @Param        test             query     bool    false  "Use the carrier test endpoint"
// @Success      200              {object}  trackingResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Failure      504              {object}  errorResponse
// @Router       /v1/tracking/{tracking_number} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var (
		idType     string
		begin, end time.Time
		test       bool
	)
	err := echo.QueryParamsBinder(c).
		String("type", &idType).
		Time("begin", &begin, dateLayout).
		Time("end", &end, dateLayout).
		Bool("test", &test).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	resp, err := h.service.FindTrackingInfo(c.Request().Context(), c.Param("tracking_number"), domain.RequestOptions{
		PackageIdentifierType: idType,
		ShipDateRangeBegin:    begin,
		ShipDateRangeEnd:      end,
		Test:                  test,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackingResponse(resp))
}

// Batch handles POST /v1/tracking/batch. Entries are tracked concurrently and
// returned in request order; a failing entry carries its error instead of
// failing the batch.
//
// @Summary      Track a batch of packages
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      trackingBatchRequest  true  "Packages to track"
// @Success      200   {object}  trackingBatchResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/tracking/batch [post]
func (h *TrackingHandler) Batch(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req trackingBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}
	if h.maxBatch > 0 && len(req.Items) > h.maxBatch {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch exceeds %d items", h.maxBatch))
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	queries := make([]ports.TrackingQuery, len(req.Items))
	for i, item := range req.Items {
		queries[i] = toTrackingQuery(item)
	}

	results, err := h.dispatcher.Track(c.Request().Context(), queries)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBatchResponse(results))
}
