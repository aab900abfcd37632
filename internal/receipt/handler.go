package receipt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/report"
	"github.com/fkhayef/receiptsplit/internal/settlement"
	"github.com/fkhayef/receiptsplit/pkg/response"
)

// Handler handles HTTP requests for receipt calculations
type Handler struct {
	service   *Service
	formatter report.Formatter
}

// NewHandler creates a new receipt handler
func NewHandler(service *Service, formatter report.Formatter) *Handler {
	return &Handler{service: service, formatter: formatter}
}

// Routes returns the router for receipt endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/calculate", h.Calculate)
	r.Get("/roster", h.Roster)

	return r
}

// Calculate handles POST /receipts/calculate
// @Summary      Split a voucher receipt
// @Description  Apply the voucher discount, charge specific items and split the remainder between the two sharers
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Produce      plain
// @Param        request body CalculateRequest true "Receipt to split"
// @Param        format query string false "Set to text for the plain text report"
// @Success      200 {object} response.APIResponse{data=CalculationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /receipts/calculate [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	calc, err := h.service.Calculate(r.Context(), &req)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			details := make([]response.FieldDetail, len(reqErr.Fields))
			for i, f := range reqErr.Fields {
				details[i] = response.FieldDetail{Field: f.Field, Rule: f.Rule}
			}
			response.ValidationFailed(w, "Invalid receipt input", details)
			return
		}
		if errors.Is(err, ErrUnknownParticipant) || errors.Is(err, settlement.ErrUnknownMode) || errors.Is(err, split.ErrDiscountOutOfRange) {
			response.BadRequest(w, err.Error())
			return
		}
		if errors.Is(err, split.ErrSpecificCostsExceedTotal) {
			response.UnprocessableEntity(w, "SPECIFIC_COSTS_EXCEED_TOTAL",
				"The specific items cost more than the whole receipt after discount. Check the amounts and try again.")
			return
		}
		response.InternalError(w, "Failed to calculate receipt")
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "text") {
		var b strings.Builder
		if err := h.formatter.Write(&b, calc.View()); err != nil {
			response.InternalError(w, "Failed to render report")
			return
		}
		response.Text(w, http.StatusOK, b.String())
		return
	}

	response.JSON(w, http.StatusOK, calc.ToResponse(h.formatter))
}

// Roster handles GET /receipts/roster
// @Summary      Get the roster
// @Description  List the participants, their roles, the default payer and the currency symbol
// @Tags         receipts
// @Produce      json
// @Success      200 {object} response.APIResponse{data=RosterResponse}
// @Router       /receipts/roster [get]
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, &RosterResponse{
		Participants:   h.service.Roster().Participants(),
		DefaultPayer:   h.service.DefaultPayer(),
		CurrencySymbol: h.formatter.Symbol,
		SettlementMode: string(h.service.DefaultMode()),
	})
}
