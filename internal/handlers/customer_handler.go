package handlers

import (
	"net/http"

	"github.com/ledgerbook/backend/internal/services"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service *services.CustomerService
	logger  *zap.Logger
}

func NewCustomerHandler(service *services.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, logger: logger.Named("customers")}
}

// List returns the caller's customers
// @Summary List customers
// @Description Newest first, not paginated
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Customer
// @Failure 401 {object} services.ErrorResponse
// @Router /customers/ [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	customers, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Create adds a customer
// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} services.ErrorResponse
// @Failure 401 {object} services.ErrorResponse
// @Router /customers/ [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req services.CustomerRequest
	if !decodeJSON(w, r, &req, customerReadOnly...) {
		return
	}

	customer, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// Get returns one customer
// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{id}/ [get]
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Update replaces a customer
// @Summary Replace customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body services.CustomerRequest true "Customer"
// @Success 200 {object} models.Customer
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{id}/ [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req services.CustomerRequest
	if !decodeJSON(w, r, &req, customerReadOnly...) {
		return
	}

	customer, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Delete removes a customer and its ledger entries
// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{id}/ [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Search finds customers by name or phone
// @Summary Search customers
// @Description Case-insensitive substring match on name or phone
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param q query string true "At least 2 characters"
// @Success 200 {array} models.Customer
// @Failure 400 {object} services.ErrorResponse
// @Router /customers/search/ [get]
func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	customers, err := h.service.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Summary returns a customer with its balance summary
// @Summary Customer summary
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} models.CustomerSummary
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{id}/summary/ [get]
func (h *CustomerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), userID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
