package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// operationHandler handles monetary operations and statement queries.
type operationHandler struct {
	ledgerService    portssvc.LedgerSvc
	statementService portssvc.StatementSvc
}

func newOperationHandler(ls portssvc.LedgerSvc, ss portssvc.StatementSvc) *operationHandler {
	return &operationHandler{
		ledgerService:    ls,
		statementService: ss,
	}
}

// RegisterOperationRoutes registers the deposit, withdraw, transfer and bank statement routes.
func RegisterOperationRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, statementService portssvc.StatementSvc) {
	h := newOperationHandler(ledgerService, statementService)

	operations := rg.Group("/operations")
	{
		operations.POST("/deposit/:accountID", h.deposit)
		operations.POST("/withdraw/:accountID", h.withdraw)
		operations.POST("/transfer/:accountID", h.transfer)
		operations.GET("/bank-statement/:accountID", h.bankStatement)
	}
}

// deposit godoc
// @Summary Deposit into an account
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   operation body dto.OperationRequest true "Deposit value (at least 10)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to deposit"
// @Router /operations/deposit/{accountID} [post]
func (h *operationHandler) deposit(c *gin.Context) {
	accountID, req, ok := bindOperation(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.Deposit(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Balances may go negative; no funds check is made
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   operation body dto.OperationRequest true "Withdrawal value (at least 10)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to withdraw"
// @Router /operations/withdraw/{accountID} [post]
func (h *operationHandler) withdraw(c *gin.Context) {
	accountID, req, ok := bindOperation(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.Withdraw(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Writes a debit on the source and a credit on the destination atomically. Returns the source entry.
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Source account ID"
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or same account id"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to transfer"
// @Router /operations/transfer/{accountID} [post]
func (h *operationHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.ledgerService.Transfer(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Transfer completed", slog.Int64("source_account_id", accountID), slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// bankStatement godoc
// @Summary Get the bank statement of an account
// @Description Lists ledger entries in creation order. Every filter is optional and filters combine with AND.
// @Tags operations
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   startTime query string false "Inclusive lower bound (RFC 3339, or ISO local date-time in UTC)"
// @Param   endTime query string false "Inclusive upper bound (RFC 3339, or ISO local date-time in UTC)"
// @Param   counterpartyName query string false "Exact counterparty name"
// @Param   limit query int false "Page size; omitted returns the whole history"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to build statement"
// @Router /operations/bank-statement/{accountID} [get]
func (h *operationHandler) bankStatement(c *gin.Context) {
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var params dto.ListStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	filter, err := statementFilterFromParams(params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := h.statementService.GetStatementPage(c.Request.Context(), accountID, filter, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(accountID, page.Transactions, page.NextToken))
}

func bindOperation(c *gin.Context) (int64, dto.OperationRequest, bool) {
	var req dto.OperationRequest
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return 0, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return 0, req, false
	}
	return accountID, req, true
}

// localDateTime is an ISO date-time without offset, read as UTC.
const localDateTime = "2006-01-02T15:04:05"

func parseStatementTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTime, s, time.UTC)
}

// statementFilterFromParams parses the optional query values. Blank values are absent.
func statementFilterFromParams(params dto.ListStatementParams) (domain.StatementFilter, error) {
	var filter domain.StatementFilter
	verr := &apperrors.ValidationError{}

	if s := strings.TrimSpace(params.StartTime); s != "" {
		t, err := parseStatementTime(s)
		if err != nil {
			verr.Add("startTime", "must be an RFC 3339 or ISO local date-time")
		} else {
			filter.StartTime = &t
		}
	}
	if s := strings.TrimSpace(params.EndTime); s != "" {
		t, err := parseStatementTime(s)
		if err != nil {
			verr.Add("endTime", "must be an RFC 3339 or ISO local date-time")
		} else {
			filter.EndTime = &t
		}
	}
	if params.CounterpartyName != "" {
		name := params.CounterpartyName
		filter.CounterpartyName = &name
	}
	if params.Limit < 0 {
		verr.Add("limit", "must be greater than or equal to 0")
	}

	if len(verr.Fields) > 0 {
		return domain.StatementFilter{}, verr
	}
	return filter, nil
}
