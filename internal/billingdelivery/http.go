// Package billingdelivery manages delivery layer of the billing cycle.
package billingdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-card/card-bank/internal/domain"
	"github.com/go-card/card-bank/pkg/errorspkg"
	"github.com/go-card/card-bank/pkg/web"
)

// Service provides service layer interface needed by billing delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package billingdelivery
type Service interface {
	GenerateMonthlyBill(ctx context.Context, cardID string, lastBillDate time.Time) (domain.Statement, error)
	ApplyInterestIfLate(ctx context.Context, cardID string, dueDate time.Time) error
	PayBill(ctx context.Context, cardID, amount string) error
}

// Handler facilitates billing delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns billing handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
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

type statementRequest struct {
	LastBillDate time.Time `json:"last_bill_date" binding:"required"`
}

type statementData struct {
	Statement domain.Statement `json:"statement"`
}
type statementResponse struct {
	Data statementData `json:"data,omitempty"`
}

// CreateStatement handles http request to generate the monthly bill.
func (h *Handler) CreateStatement(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req statementRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	statement, err := h.service.GenerateMonthlyBill(ctx, uri.ID, req.LastBillDate)
	if err != nil {
		switch err {
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidBillDate:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statementResponse{Data: statementData{Statement: statement}})
}

type interestRequest struct {
	DueDate time.Time `json:"due_date" binding:"required"`
}

// ApplyInterest handles http request to accrue late interest.
func (h *Handler) ApplyInterest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req interestRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	if err := h.service.ApplyInterestIfLate(ctx, uri.ID, req.DueDate); err != nil {
		if err == domain.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type payBillRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// PayBill handles http request to pay the bill.
func (h *Handler) PayBill(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri cardURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	var req payBillRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrMsg(err)})

		return
	}

	if err := h.service.PayBill(ctx, uri.ID, req.Amount); err != nil {
		switch err {
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNonPositiveAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCardInactiveOrExpired,
			domain.ErrPaymentExceedsLimit,
			domain.ErrPaymentExceedsBalance:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}
