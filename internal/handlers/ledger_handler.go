package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/services"
	"go.uber.org/zap"
)

// EntryPageResponse is one page of ledger entries.
// @Description Paginated ledger entries
type EntryPageResponse struct {
	Count    int64                `json:"count" example:"12"`
	Next     *string              `json:"next" example:"http://localhost:8080/api/ledger-entries/?page=2"`
	Previous *string              `json:"previous"`
	Results  []models.LedgerEntry `json:"results"`
}

type LedgerHandler struct {
	service *services.LedgerService
	logger  *zap.Logger
}

func NewLedgerHandler(service *services.LedgerService, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{service: service, logger: logger.Named("ledger")}
}

// List returns the caller's ledger entries
// @Summary List ledger entries
// @Description Newest first, paginated
// @Tags ledger-entries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, 1-based, or 'last'"
// @Success 200 {object} EntryPageResponse
// @Failure 404 {object} services.ErrorResponse "Invalid page."
// @Router /ledger-entries/ [get]
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, err := h.service.List(r.Context(), userID, r.URL.Query().Get("page"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := EntryPageResponse{Count: page.Count, Results: page.Results}
	if resp.Results == nil {
		resp.Results = []models.LedgerEntry{}
	}
	if page.HasNext() {
		resp.Next = pageURL(r, page.Page+1)
	}
	if page.HasPrevious() {
		resp.Previous = pageURL(r, page.Page-1)
	}
	writeJSON(w, http.StatusOK, resp)
}

// pageURL is the absolute URL of the request with its page parameter
// replaced. Page 1 drops the parameter.
func pageURL(r *http.Request, page int) *string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	query := r.URL.Query()
	if page == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: query.Encode()}
	s := u.String()
	return &s
}

// Create records a ledger entry
// @Summary Create ledger entry
// @Description entry_date is set to the current date
// @Tags ledger-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.LedgerEntryRequest true "Ledger entry"
// @Success 201 {object} models.LedgerEntry
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse "Customer not found"
// @Router /ledger-entries/ [post]
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req services.LedgerEntryRequest
	if !decodeJSON(w, r, &req, entryReadOnly...) {
		return
	}

	entry, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Get returns one ledger entry
// @Summary Get ledger entry
// @Tags ledger-entries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} models.LedgerEntry
// @Failure 404 {object} services.ErrorResponse
// @Router /ledger-entries/{id}/ [get]
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Update replaces a ledger entry
// @Summary Replace ledger entry
// @Description Replaces type, amount and note; customer is optional
// @Tags ledger-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body services.LedgerEntryRequest true "Ledger entry"
// @Success 200 {object} models.LedgerEntry
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /ledger-entries/{id}/ [put]
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req services.LedgerEntryRequest
	if !decodeJSON(w, r, &req, entryReadOnly...) {
		return
	}

	entry, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Delete removes a ledger entry
// @Summary Delete ledger entry
// @Tags ledger-entries
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Router /ledger-entries/{id}/ [delete]
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ByCustomer returns all entries of a customer with its summary
// @Summary Entries by customer
// @Tags ledger-entries
// @Produce json
// @Security BearerAuth
// @Param customer_id query int true "Customer ID"
// @Success 200 {object} services.CustomerEntries
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /ledger-entries/by_customer/ [get]
func (h *LedgerHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ByCustomer(r.Context(), userID, r.URL.Query().Get("customer_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// FilterByDate returns a customer's entries inside an inclusive date range
// @Summary Filter entries by date
// @Tags ledger-entries
// @Produce json
// @Security BearerAuth
// @Param customer_id query int true "Customer ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} services.DateFilterResult
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /ledger-entries/filter_by_date/ [get]
func (h *LedgerHandler) FilterByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	result, err := h.service.FilterByDate(r.Context(), userID, q.Get("customer_id"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// FilterByType returns a customer's entries of one type and their total
// @Summary Filter entries by type
// @Tags ledger-entries
// @Produce json
// @Security BearerAuth
// @Param customer_id query int true "Customer ID"
// @Param type query string true "CREDIT or DEBIT"
// @Success 200 {object} services.TypeFilterResult
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /ledger-entries/filter_by_type/ [get]
func (h *LedgerHandler) FilterByType(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	result, err := h.service.FilterByType(r.Context(), userID, q.Get("customer_id"), q.Get("type"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Statistics aggregates all of the caller's customers
// @Summary Account statistics
// @Tags ledger-entries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Statistics
// @Router /ledger-entries/statistics/ [get]
func (h *LedgerHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
