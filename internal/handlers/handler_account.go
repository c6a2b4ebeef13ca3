package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const accountsBasePath = "/api/v1/accounts"

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.GET("/:accountID/balance", h.getAccountBalance)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Opens a new account for the given owner
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Header  201 {string} Location "URI of the created account"
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", newAccount.AccountID))
	c.Header("Location", fmt.Sprintf("%s/%d", accountsBasePath, newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve account"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves accounts ordered by ID
// @Tags accounts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Debug("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.ToListAccountResponse(accounts),
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// updateAccount godoc
// @Summary Update an account
// @Description Replaces the owner name of an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID to update"
// @Param   account body dto.UpdateAccountRequest true "Account details to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update account"
// @Router /accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	updatedAccount, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(updatedAccount))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account that has no ledger entries
// @Tags accounts
// @Param   accountID path int true "Account ID to delete"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Account is referenced by ledger entries"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete account"
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Account deleted successfully", slog.Int64("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// getAccountBalance godoc
// @Summary Get account balance
// @Description Sums every ledger entry of the account
// @Tags accounts
// @Produce json
// @Param   accountID path int true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to calculate balance"
// @Router /accounts/{accountID}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	accountID, err := parseAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.accountService.CalculateAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: accountID, Balance: balance})
}
