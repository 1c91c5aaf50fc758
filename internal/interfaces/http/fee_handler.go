package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/fee-details-api/internal/application/billing"
	"github.com/jhoicas/fee-details-api/internal/application/dto"
	"github.com/jhoicas/fee-details-api/internal/domain"
)

// FeeHandler maneja las peticiones HTTP del desglose de tarifas (protegido).
type FeeHandler struct {
	uc *billing.FeeDetailsUseCase
}

// NewFeeHandler construye el handler.
func NewFeeHandler(uc *billing.FeeDetailsUseCase) *FeeHandler {
	return &FeeHandler{uc: uc}
}

// GetDetailLines devuelve el desglose formateado de una tarifa porcentual.
// @Summary      Desglose de tarifa porcentual
// @Tags         fees
// @Produce      json
// @Param        id      path   string  true   "ID de la tarifa (UUID)"
// @Param        locale  query  string  false  "Locale BCP 47 (ej. en, es-CO)"
// @Success      200  {object}  dto.FeeDetailLinesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/fees/{id}/detail-lines [get]
func (h *FeeHandler) GetDetailLines(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, ok := pathUUID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un UUID"})
	}
	res, err := h.uc.GetFeeDetailLines(c.UserContext(), companyID, id, c.Query("locale"))
	if err != nil {
		return writeError(c, err, "tarifa no encontrada")
	}
	return c.JSON(res)
}

// DownloadDetailLinesPDF descarga el desglose de una tarifa en PDF.
// @Summary      Desglose de tarifa en PDF
// @Tags         fees
// @Produce      application/pdf
// @Param        id      path   string  true   "ID de la tarifa (UUID)"
// @Param        locale  query  string  false  "Locale BCP 47"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/fees/{id}/detail-lines/pdf [get]
func (h *FeeHandler) DownloadDetailLinesPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, ok := pathUUID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un UUID"})
	}
	pdfBytes, filename, err := h.uc.DownloadFeeDetailsPDF(c.UserContext(), companyID, id, c.Query("locale"))
	if err != nil {
		return writeError(c, err, "tarifa no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// ListInvoiceDetailLines devuelve el desglose de todas las tarifas porcentuales de una factura.
// @Summary      Desglose de tarifas porcentuales de una factura
// @Tags         invoices
// @Produce      json
// @Param        id      path   string  true   "ID de la factura (UUID)"
// @Param        locale  query  string  false  "Locale BCP 47"
// @Success      200  {array}   dto.FeeDetailLinesResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/invoices/{id}/fee-detail-lines [get]
func (h *FeeHandler) ListInvoiceDetailLines(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, ok := pathUUID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un UUID"})
	}
	list, err := h.uc.ListInvoiceFeeDetailLines(c.UserContext(), companyID, id, c.Query("locale"))
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	return c.JSON(list)
}

// Preview desglosa un snapshot enviado en el body, sin consultar la base de datos.
// @Summary      Vista previa del desglose
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PreviewFeeDetailLinesRequest  true  "Snapshot de la tarifa"
// @Success      200   {object}  dto.FeeDetailLinesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/fee-detail-lines/preview [post]
func (h *FeeHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewFeeDetailLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := validationDetails(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	res, err := h.uc.Preview(in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(res)
}

func pathUUID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// writeError traduce los errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotPercentage):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_PERCENTAGE_FEE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
