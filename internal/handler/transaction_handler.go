package handler

import (
	"errors"
	"net/http"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/Rugged007/Finance-App/internal/service"
	"github.com/Rugged007/Finance-App/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SubmissionIDHeader identifies the originating form instance so a
// double-submitted create commits at most once.
const SubmissionIDHeader = "X-Submission-Id"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	feed *service.FeedService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(feed *service.FeedService) *TransactionHandler {
	return &TransactionHandler{feed: feed}
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	MerchantName string `json:"merchantName"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	Notes        string `json:"notes,omitempty"`
	IsIncome     bool   `json:"isIncome"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID           string  `json:"id"`
	MerchantName string  `json:"merchantName"`
	Amount       string  `json:"amount"`
	Date         string  `json:"date"`
	Category     string  `json:"category"`
	Description  *string `json:"description,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsIncome     bool    `json:"isIncome"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// TransactionListResponse represents the derived feed in API responses.
// Count is the number of records after filtering; Total is the size of the
// whole collection ("Showing X of Y transactions").
type TransactionListResponse struct {
	Data  []TransactionResponse `json:"data"`
	Count int                   `json:"count"`
	Total int                   `json:"total"`
}

// ListTransactions godoc
// @Summary List transactions
// @Description Get the transaction feed filtered and ordered by the view parameters
// @Tags transactions
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring over merchant, category, description"
// @Param sortBy query string false "Sort key (date, amount, category)"
// @Param sortDir query string false "Sort direction (asc, desc)" default(desc)
// @Success 200 {object} TransactionListResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	params := domain.ViewParams{
		SearchText: c.QueryParam("search"),
		SortDir:    domain.SortDesc,
	}

	switch key := domain.SortKey(c.QueryParam("sortBy")); key {
	case domain.SortKeyNone, domain.SortKeyDate, domain.SortKeyAmount, domain.SortKeyCategory:
		params.SortBy = key
	default:
		return NewValidationError(c, "Invalid sortBy (must be 'date', 'amount' or 'category')", nil)
	}

	switch dir := domain.SortDirection(c.QueryParam("sortDir")); dir {
	case "":
	case domain.SortAsc, domain.SortDesc:
		params.SortDir = dir
	default:
		return NewValidationError(c, "Invalid sortDir (must be 'asc' or 'desc')", nil)
	}

	view, total, err := h.feed.View(c.Request().Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load transactions")
		return NewInternalError(c, "Failed to load transactions")
	}

	response := TransactionListResponse{
		Data:  make([]TransactionResponse, len(view)),
		Count: len(view),
		Total: total,
	}
	for i, t := range view {
		response.Data[i] = toTransactionResponse(t)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Validate a transaction form and persist the normalized record
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-Submission-Id header string false "Form instance id used to reject duplicate in-flight submits"
// @Param request body TransactionRequest true "Transaction form"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	submissionID := c.Request().Header.Get(SubmissionIDHeader)

	transaction, err := h.feed.Create(c.Request().Context(), submissionID, toForm(req))
	if err != nil {
		return h.mutationError(c, err, "create")
	}

	log.Info().Str("transaction_id", transaction.ID.String()).Str("merchant", transaction.MerchantName).Msg("Transaction created")

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction id", nil)
	}

	transaction, err := h.feed.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to get transaction")
		return NewInternalError(c, "Failed to get transaction")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Validate a transaction form and persist a full-record update
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body TransactionRequest true "Transaction form"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction id", nil)
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	transaction, err := h.feed.Update(c.Request().Context(), id, toForm(req))
	if err != nil {
		return h.mutationError(c, err, "update")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction id", nil)
	}

	if err := h.feed.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	return c.NoContent(http.StatusNoContent)
}

// mutationError maps mutation workflow failures to HTTP responses.
// Validation errors carry the offending field; persistence failures are
// reported as a generic retryable message.
func (h *TransactionHandler) mutationError(c echo.Context, err error, op string) error {
	switch {
	case errors.Is(err, domain.ErrMerchantRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "merchantName", Message: "Merchant name is required"},
		})
	case errors.Is(err, domain.ErrMerchantTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "merchantName", Message: "Merchant name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a positive number"},
		})
	case errors.Is(err, domain.ErrInvalidCategory):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category must be one of the allowed values"},
		})
	case errors.Is(err, domain.ErrInvalidDate):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date must be in YYYY-MM-DD format"},
		})
	case errors.Is(err, domain.ErrFutureDate):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date must not be in the future"},
		})
	case errors.Is(err, domain.ErrNotesTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "notes", Message: "Notes must be 1000 characters or less"},
		})
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return NewConflictError(c, "This submission is already being processed")
	case errors.Is(err, domain.ErrTransactionNotFound):
		return NewNotFoundError(c, "Transaction not found")
	}

	log.Error().Err(err).Str("op", op).Msg("Transaction mutation failed")
	return NewInternalError(c, "Failed to save transaction. Please try again.")
}

func toForm(req TransactionRequest) service.TransactionForm {
	return service.TransactionForm{
		MerchantName: req.MerchantName,
		Amount:       req.Amount,
		Date:         req.Date,
		Category:     req.Category,
		Description:  req.Description,
		Notes:        req.Notes,
		IsIncome:     req.IsIncome,
	}
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID.String(),
		MerchantName: t.MerchantName,
		Amount:       t.Amount.StringFixed(2),
		Date:         t.Date.Format(util.DayFormat),
		Category:     string(t.Category),
		Description:  t.Description,
		Notes:        t.Notes,
		IsIncome:     t.IsIncome,
		CreatedAt:    t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
