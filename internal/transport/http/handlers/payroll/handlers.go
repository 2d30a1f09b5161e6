package payrollhandler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paycalc/internal/domain/payroll"
	"paycalc/internal/transport/http/api"
	"paycalc/internal/transport/http/middleware"
	"paycalc/internal/transport/http/shared"
)

type Handler struct {
	policy payroll.Policy
}

// NewHandler takes the server's active policy by value; per-request policy
// overrides never touch it.
func NewHandler(policy payroll.Policy) *Handler {
	return &Handler{policy: policy}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/policy", h.handleGetPolicy)
		r.Post("/calculate", h.handleCalculate)
		r.Post("/payslip", h.handlePayslip)
	})
}

type calculatePayload struct {
	payroll.PayInput
	Policy *payroll.Policy `json:"policy,omitempty"`
}

type payslipPayload struct {
	calculatePayload
	EmployeeName string `json:"employeeName"`
	PeriodLabel  string `json:"periodLabel"`
}

func (h *Handler) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.policy, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload calculatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	policy, input, ok := h.prepare(w, requestID, &payload)
	if !ok {
		return
	}

	api.Success(w, payroll.Calculate(input, policy), requestID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload payslipPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	policy, input, ok := h.prepare(w, requestID, &payload.calculatePayload)
	if !ok {
		return
	}

	result := payroll.Calculate(input, policy)
	pdf, err := payroll.BuildPayslipPDF(payload.EmployeeName, payload.PeriodLabel, result)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to generate payslip", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// prepare validates the payload, coerces non-finite numerics to zero (the
// engine is total only over finite inputs) and resolves the effective
// policy. A false return means the response has already been written.
func (h *Handler) prepare(w http.ResponseWriter, requestID string, payload *calculatePayload) (payroll.Policy, payroll.PayInput, bool) {
	coerceInput(&payload.PayInput)

	v := shared.NewValidator()
	v.NonNegative("monthlyGross", payload.MonthlyGross)
	v.NonNegative("fixedAllowances.conveyance", payload.Allowances.Conveyance)
	v.NonNegative("fixedAllowances.medical", payload.Allowances.Medical)
	v.NonNegative("fixedAllowances.lunch", payload.Allowances.Lunch)
	v.NonNegative("additionalExemptionsAnnual", payload.AdditionalExemptionsAnnual)
	v.IntMin("monthDays", payload.MonthDays, 1)
	v.IntRange("paymentDays", payload.PaymentDays, 0, payload.MonthDays)
	for i, line := range payload.CustomEarnings {
		v.NonNegative(fmt.Sprintf("customEarnings[%d].amount", i), line.Amount)
	}
	for i, line := range payload.CustomDeductions {
		v.NonNegative(fmt.Sprintf("customDeductions[%d].amount", i), line.Amount)
	}

	policy := h.policy
	if payload.Policy != nil {
		policy = *payload.Policy
		if err := policy.Validate(); err != nil {
			v.Add("policy", err.Error())
		}
	}

	if v.Reject(w, requestID) {
		return payroll.Policy{}, payroll.PayInput{}, false
	}
	return policy, payload.PayInput, true
}

func coerce(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

func coerceInput(input *payroll.PayInput) {
	input.MonthlyGross = coerce(input.MonthlyGross)
	input.Allowances.Conveyance = coerce(input.Allowances.Conveyance)
	input.Allowances.Medical = coerce(input.Allowances.Medical)
	input.Allowances.Lunch = coerce(input.Allowances.Lunch)
	input.AdditionalExemptionsAnnual = coerce(input.AdditionalExemptionsAnnual)
	for i := range input.CustomEarnings {
		input.CustomEarnings[i].Amount = coerce(input.CustomEarnings[i].Amount)
	}
	for i := range input.CustomDeductions {
		input.CustomDeductions[i].Amount = coerce(input.CustomDeductions[i].Amount)
	}
}
