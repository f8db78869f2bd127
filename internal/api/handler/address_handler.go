package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

// AddressHandler verifies postal addresses with the carrier.
type AddressHandler struct {
	service ports.CarrierService
}

func NewAddressHandler(service ports.CarrierService) *AddressHandler {
	return &AddressHandler{service: service}
}

// Verify handles POST /v1/addresses/verify.
//
// @Summary      Verify an address
// @Description  Candidates keep the carrier's order, which is not guaranteed to follow score.
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addressVerifyRequest  true  "Address to verify"
// @Success      200   {object}  addressVerifyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/addresses/verify [post]
func (h *AddressHandler) Verify(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req addressVerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp, err := h.service.VerifyAddress(c.Request().Context(), toLocation(req.Address), domain.RequestOptions{
		Residential: req.Residential,
		Test:        req.Test,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAddressVerifyResponse(resp))
}
