package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fee-details-api/internal/application/billing"
	"github.com/jhoicas/fee-details-api/internal/application/dto"
	"github.com/jhoicas/fee-details-api/internal/domain/entity"
	"github.com/jhoicas/fee-details-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/fee-details-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/fee-details-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "billing-test"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCompanyID  = "00000000-0000-0000-0000-000000000002"
	otherCompanyID = "00000000-0000-0000-0000-000000000003"

	feePercentageID = "11111111-1111-1111-1111-111111111111"
	feeStandardID   = "22222222-2222-2222-2222-222222222222"
	invoiceID       = "33333333-3333-3333-3333-333333333333"
	missingID       = "44444444-4444-4444-4444-444444444444"
)

type memFeeRepo struct{ fees []*entity.Fee }

func (r *memFeeRepo) GetByID(_ context.Context, id string) (*entity.Fee, error) {
	for _, f := range r.fees {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r *memFeeRepo) ListByInvoiceID(_ context.Context, id string) ([]*entity.Fee, error) {
	var out []*entity.Fee
	for _, f := range r.fees {
		if f.InvoiceID == id {
			out = append(out, f)
		}
	}
	return out, nil
}

type memInvoiceRepo struct{ inv *entity.Invoice }

func (r *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if r.inv != nil && r.inv.ID == id {
		return r.inv, nil
	}
	return nil, nil
}

// buildTestApp construye una aplicación Fiber con el router real y repositorios en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	freeEvents := int64(2)
	fees := &memFeeRepo{fees: []*entity.Fee{
		{
			ID: feePercentageID, InvoiceID: invoiceID, CompanyID: testCompanyID,
			ChargeModel: entity.ChargeModelPercentage, Currency: "USD",
			AppliedTaxes: []entity.AppliedTax{{ID: "tax-1", TaxRate: decimal.NewFromInt(20)}},
			AmountDetails: &entity.FeeAmountDetails{
				FreeUnits:          decimal.NewNullDecimal(decimal.NewFromInt(5)),
				FreeEvents:         &freeEvents,
				PaidUnits:          decimal.NewNullDecimal(decimal.NewFromInt(10)),
				Rate:               decimal.NewNullDecimal(decimal.NewFromInt(15)),
				PerUnitTotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(1500)),
			},
		},
		{
			ID: feeStandardID, InvoiceID: invoiceID, CompanyID: testCompanyID,
			ChargeModel: entity.ChargeModelStandard, Currency: "USD",
		},
	}}
	invoices := &memInvoiceRepo{inv: &entity.Invoice{ID: invoiceID, CompanyID: testCompanyID, Currency: "USD"}}
	uc := billing.NewFeeDetailsUseCase(fees, invoices, pdf.NewMarotoFeeDetailsGenerator(),
		billing.DisplayConfig{Locale: "en", Currency: "USD"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{FeeDetails: uc, JWTSecret: testJWTSecret, JWTIssuer: testIssuer})
	return app
}

func bearer(t *testing.T, companyID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, companyID, testIssuer, 60)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func do(t *testing.T, app *fiber.App, method, path, auth string, body []byte) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinToken(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/fees/"+feePercentageID+"/detail-lines", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/fees/"+feePercentageID+"/detail-lines", "Bearer basura", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/fees/"+feePercentageID+"/detail-lines", "Basic abc", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/fees/:id/detail-lines
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDetailLines_OK(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/fees/"+feePercentageID+"/detail-lines", bearer(t, testCompanyID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.FeeDetailLinesResponse](t, resp)
	require.Len(t, body.Lines, 2)
	assert.Equal(t, "free_units", body.Lines[0].Kind)
	assert.Equal(t, "paid_units", body.Lines[1].Kind)
	assert.Equal(t, "15%", body.Lines[1].UnitValue)
	assert.Equal(t, "$15.00", body.Lines[1].TotalValue)
	assert.Equal(t, "20%", body.Lines[1].Taxes[0].Display)
}

func TestGetDetailLines_Errores(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t, testCompanyID)

	cases := []struct {
		name   string
		path   string
		auth   string
		status int
		code   string
	}{
		{"id no uuid", "/api/fees/abc/detail-lines", auth, http.StatusBadRequest, "VALIDATION"},
		{"no existe", "/api/fees/" + missingID + "/detail-lines", auth, http.StatusNotFound, "NOT_FOUND"},
		{"otra empresa", "/api/fees/" + feePercentageID + "/detail-lines", bearer(t, otherCompanyID), http.StatusForbidden, "FORBIDDEN"},
		{"no porcentual", "/api/fees/" + feeStandardID + "/detail-lines", auth, http.StatusUnprocessableEntity, "NOT_PERCENTAGE_FEE"},
		{"locale inválido", "/api/fees/" + feePercentageID + "/detail-lines?locale=%3F%3F-x", auth, http.StatusBadRequest, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, tc.path, tc.auth, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestDownloadDetailLinesPDF(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/fees/"+feePercentageID+"/detail-lines/pdf", bearer(t, testCompanyID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.Contains(resp.Header.Get("Content-Disposition"), "desglose_tarifa_"+feePercentageID+".pdf"))

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/invoices/:id/fee-detail-lines
// ──────────────────────────────────────────────────────────────────────────────

func TestListInvoiceDetailLines(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/invoices/"+invoiceID+"/fee-detail-lines", bearer(t, testCompanyID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[[]dto.FeeDetailLinesResponse](t, resp)
	require.Len(t, list, 1, "la tarifa estándar se omite")
	assert.Equal(t, feePercentageID, list[0].FeeID)

	resp = do(t, app, http.MethodGet, "/api/invoices/"+missingID+"/fee-detail-lines", bearer(t, testCompanyID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/fee-detail-lines/preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_OK(t *testing.T) {
	app := buildTestApp(t)
	body := []byte(`{
		"currency": "USD",
		"amount_details": {
			"free_units": "5", "free_events": 2, "paid_units": "10", "rate": "15",
			"per_unit_total_amount": "1500", "fixed_fee_unit_amount": "0",
			"min_max_adjustment_total_amount": "-3.5"
		},
		"applied_taxes": []
	}`)
	resp := do(t, app, http.MethodPost, "/api/fee-detail-lines/preview", bearer(t, testCompanyID), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[dto.FeeDetailLinesResponse](t, resp)
	require.Len(t, res.Lines, 3)
	assert.Equal(t, "min_max_adjustment", res.Lines[2].Kind)
	assert.Equal(t, "-$3.50", res.Lines[2].TotalValue)
	for _, l := range res.Lines {
		require.Len(t, l.Taxes, 1)
		assert.Equal(t, "0%", l.Taxes[0].Display)
	}
}

func TestPreview_DetallesNulos(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodPost, "/api/fee-detail-lines/preview", bearer(t, testCompanyID),
		[]byte(`{"currency":"EUR","amount_details":null}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[dto.FeeDetailLinesResponse](t, resp)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "paid_units", res.Lines[0].Kind)
}

func TestPreview_Validacion(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t, testCompanyID)

	resp := do(t, app, http.MethodPost, "/api/fee-detail-lines/preview", auth, []byte(`{"currency":"US"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", res.Code)
	assert.Contains(t, res.Details, "currency")

	resp = do(t, app, http.MethodPost, "/api/fee-detail-lines/preview", auth, []byte(`{"currency":"USD","applied_taxes":[{"tax_rate":"10"}]}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Details, "applied_taxes[0].id")

	resp = do(t, app, http.MethodPost, "/api/fee-detail-lines/preview", auth, []byte(`{"currency":"USD","applied_taxes":[{"id":"t","tax_rate":"150"}]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "tasa fuera de rango")

	resp = do(t, app, http.MethodPost, "/api/fee-detail-lines/preview", auth, []byte(`{no-json`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}
