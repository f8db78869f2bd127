package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

// RateHandler quotes shipments against the carrier.
type RateHandler struct {
	service ports.CarrierService
}

func NewRateHandler(service ports.CarrierService) *RateHandler {
	return &RateHandler{service: service}
}

// Quote handles POST /v1/rates.
//
// @Summary      Quote a shipment
// @Description  Returns one rate per carrier service. A carrier refusal is reported with success=false.
// @Tags         rates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rateRequest  true  "Shipment to rate"
// @Success      200   {object}  rateQuoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Failure      504   {object}  errorResponse
// @Router       /v1/rates [post]
func (h *RateHandler) Quote(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := toShipment(req)
	if err != nil {
		return err
	}

	resp, err := h.service.FindRates(c.Request().Context(), shipment, toRateOptions(req.Options))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRateQuoteResponse(resp))
}
