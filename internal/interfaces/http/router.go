package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fee-details-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FeeDetails *billing.FeeDetailsUseCase
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	feeHandler := NewFeeHandler(deps.FeeDetails)

	// Fees
	fees := api.Group("/fees")
	fees.Get("/:id/detail-lines", feeHandler.GetDetailLines)
	fees.Get("/:id/detail-lines/pdf", feeHandler.DownloadDetailLinesPDF)

	// Invoices
	invoices := api.Group("/invoices")
	invoices.Get("/:id/fee-detail-lines", feeHandler.ListInvoiceDetailLines)

	// Preview sin persistencia
	api.Post("/fee-detail-lines/preview", feeHandler.Preview)
}
