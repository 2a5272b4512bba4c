// Package carddelivery manages delivery layer of card accounts.
package carddelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-card/card-bank/internal/domain"
	"github.com/go-card/card-bank/pkg/errorspkg"
	"github.com/go-card/card-bank/pkg/web"
)

// Service provides service layer interface needed by card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package carddelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateCardParams) (string, domain.CardSnapshot, error)
	Get(ctx context.Context, cardID string) (domain.CardSnapshot, error)
	Pay(ctx context.Context, cardID, amount string, transactionType domain.TransactionType, description string) error
	SetStatus(ctx context.Context, cardID string, status domain.Status) error
	Transactions(ctx context.Context, cardID string) ([]domain.Transaction, error)
	TransactionsByType(ctx context.Context, cardID string, transactionType domain.TransactionType) ([]domain.Transaction, error)
	TransactionsSince(ctx context.Context, cardID string, since time.Time) ([]domain.Transaction, error)
	TotalAmountByType(ctx context.Context, cardID string, transactionType domain.TransactionType) (decimal.Decimal, error)
}

// Handler facilitates card delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns card handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

func bindingErrMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return "invalid request"
}

type cardURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type createRequest struct {
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerEmail   string    `json:"customer_email" binding:"required,email"`
	CustomerContact string    `json:"customer_contact" binding:"required"`
	ExpiresAt       time.Time `json:"expires_at" binding:"required"`
	CardNumber      string    `json:"card_number" binding:"required,len=16"`
	SecurityCode    string    `json:"security_code" binding:"required,len=3"`
}

type cardData struct {
	CardID string              `json:"card_id"`
	Card   domain.CardSnapshot `json:"card"`
}
type cardResponse struct {
	Data cardData `json:"data,omitempty"`
}

// Create handles http request to open a card account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	id, card, err := h.service.Create(ctx, domain.CreateCardParams{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerContact: req.CustomerContact,
		ExpiresAt:       req.ExpiresAt,
		Number:          req.CardNumber,
		SecurityCode:    req.SecurityCode,
	})
	if err != nil {
		switch err {
		case domain.ErrEmptyCustomerField,
			domain.ErrInvalidCardNumber,
			domain.ErrInvalidSecurityCode,
			domain.ErrInvalidExpiry,
			domain.ErrInvalidCustomer:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, cardResponse{Data: cardData{CardID: id, Card: card}})
}

// Get handles http request to get a card snapshot.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	card, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, cardResponse{Data: cardData{CardID: uri.ID, Card: card}})
}

type payRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,transactiontype"`
	Description string `json:"description"`
}

// Pay handles http request to apply a transaction to a card.
func (h *Handler) Pay(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req payRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	err := h.service.Pay(ctx, uri.ID, req.Amount, domain.TransactionType(req.Type), req.Description)
	if err != nil {
		switch err {
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidAmount,
			domain.ErrNonPositiveAmount,
			domain.ErrUnsupportedTransactionType:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCardInactiveOrExpired,
			domain.ErrInsufficientCredit,
			domain.ErrPaymentExceedsLimit,
			domain.ErrPaymentExceedsBalance,
			domain.ErrCashWithdrawLimitExceeded:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type listRequest struct {
	Type  string `form:"type" binding:"omitempty,transactiontype"`
	Since string `form:"since"`
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
}
type transactionsResponse struct {
	Data transactionsData `json:"data,omitempty"`
}

// List handles http request to list card transactions, optionally filtered
// by type or by instant.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var (
		transactions []domain.Transaction
		err          error
	)

	switch {
	case req.Type != "":
		transactions, err = h.service.TransactionsByType(ctx, uri.ID, domain.TransactionType(req.Type))
	case req.Since != "":
		var since time.Time

		since, err = time.Parse(time.RFC3339, req.Since)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Response{Error: "Since must be a RFC3339 timestamp"})

			return
		}

		transactions, err = h.service.TransactionsSince(ctx, uri.ID, since)
	default:
		transactions, err = h.service.Transactions(ctx, uri.ID)
	}

	if err != nil {
		if err == domain.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transactionsResponse{Data: transactionsData{Transactions: transactions}})
}

type totalRequest struct {
	Type string `form:"type" binding:"required,transactiontype"`
}

type totalData struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}
type totalResponse struct {
	Data totalData `json:"data,omitempty"`
}

// Total handles http request to sum card transactions of one type.
func (h *Handler) Total(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req totalRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	total, err := h.service.TotalAmountByType(ctx, uri.ID, domain.TransactionType(req.Type))
	if err != nil {
		if err == domain.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, totalResponse{Data: totalData{Type: req.Type, Total: total}})
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required,cardstatus"`
}

// SetStatus handles http request to replace the card status.
func (h *Handler) SetStatus(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req setStatusRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	if err := h.service.SetStatus(ctx, uri.ID, domain.Status(req.Status)); err != nil {
		if err == domain.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}
