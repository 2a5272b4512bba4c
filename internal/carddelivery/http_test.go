package carddelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-card/card-bank/internal/domain"
	"github.com/go-card/card-bank/pkg/errorspkg"
	"github.com/go-card/card-bank/pkg/randompkg"
	"github.com/go-card/card-bank/pkg/web"
)

var (
	testNow    = time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	testCardID = "b4a2a8f6-15b4-4c34-90d4-ab0e053b06a2"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("transactiontype", ValidTransactionType); err != nil {
			os.Exit(1)
		}

		if err := v.RegisterValidation("cardstatus", ValidCardStatus); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func randomSnapshot() domain.CardSnapshot {
	return domain.CardSnapshot{
		MaskedNumber:      "************" + randompkg.Digits(4),
		Status:            domain.StatusActive,
		OwedBalance:       decimal.Zero,
		MaxCreditLimit:    domain.DefaultMaxCreditLimit,
		AvailableCredit:   domain.DefaultMaxCreditLimit,
		CashWithdrawLimit: decimal.NewFromInt(10000),
		ExpiresAt:         testNow.AddDate(3, 0, 0),
		CustomerName:      randompkg.Name(),
	}
}

func TestCreate(t *testing.T) {
	card := randomSnapshot()

	type requestBody struct {
		CustomerName    string `json:"customer_name"`
		CustomerEmail   string `json:"customer_email"`
		CustomerContact string `json:"customer_contact"`
		ExpiresAt       string `json:"expires_at"`
		CardNumber      string `json:"card_number"`
		SecurityCode    string `json:"security_code"`
	}

	validBody := requestBody{
		CustomerName:    card.CustomerName,
		CustomerEmail:   randompkg.Email(),
		CustomerContact: randompkg.Contact(),
		ExpiresAt:       card.ExpiresAt.Format(time.RFC3339),
		CardNumber:      "4000123412341234",
		SecurityCode:    "123",
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(cardService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: validBody,
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(testCardID, card, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "MissingEmail",
			requestBody: func() requestBody {
				body := validBody
				body.CustomerEmail = ""
				return body
			}(),
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "CustomerEmail is required",
		},
		{
			name: "ShortCardNumber",
			requestBody: func() requestBody {
				body := validBody
				body.CardNumber = "4000"
				return body
			}(),
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "CardNumber must be 16 characters long",
		},
		{
			name:        "ExpiryInPast",
			requestBody: validBody,
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return("", domain.CardSnapshot{}, domain.ErrInvalidExpiry)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidExpiry.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: validBody,
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return("", domain.CardSnapshot{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardService := NewMockService(ctrl)
			cardHandler := NewHandler(cardService)

			server := gin.New()
			server.POST("/cards", cardHandler.Create)

			tc.buildStubs(cardService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/cards", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusCreated {
				var res web.Response
				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			var res struct {
				Data struct {
					CardID string              `json:"card_id"`
					Card   domain.CardSnapshot `json:"card"`
				} `json:"data"`
			}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Data.CardID != testCardID {
				t.Errorf("res.Data.CardID=%q, want %q", res.Data.CardID, testCardID)
			}

			if diff := cmp.Diff(card, res.Data.Card); diff != "" {
				t.Errorf("res.Data.Card mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPay(t *testing.T) {
	type requestBody struct {
		Amount      string `json:"amount"`
		Type        string `json:"type"`
		Description string `json:"description"`
	}

	testCases := []struct {
		name           string
		cardID         string
		requestBody    requestBody
		buildStubs     func(cardService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:   "OK",
			cardID: testCardID,
			requestBody: requestBody{
				Amount:      "100",
				Type:        "PURCHASE",
				Description: "groceries",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Pay(gomock.Any(), gomock.Eq(testCardID), gomock.Eq("100"),
						gomock.Eq(domain.TypePurchase), gomock.Eq("groceries")).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "InvalidURI",
			cardID: "not-a-uuid",
			requestBody: requestBody{
				Amount: "100",
				Type:   "PURCHASE",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().Pay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID must be a valid UUID",
		},
		{
			name:   "UnknownType",
			cardID: testCardID,
			requestBody: requestBody{
				Amount: "100",
				Type:   "CASHBACK",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().Pay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Type is not supported",
		},
		{
			name:   "CardNotFound",
			cardID: testCardID,
			requestBody: requestBody{
				Amount: "100",
				Type:   "PURCHASE",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Pay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ErrCardNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrCardNotFound.Error(),
		},
		{
			name:   "InsufficientCredit",
			cardID: testCardID,
			requestBody: requestBody{
				Amount: "150000",
				Type:   "PURCHASE",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Pay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ErrInsufficientCredit)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientCredit.Error(),
		},
		{
			name:   "CashWithdrawLimitExceeded",
			cardID: testCardID,
			requestBody: requestBody{
				Amount: "15000",
				Type:   "WITHDRAW",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Pay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ErrCashWithdrawLimitExceeded)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrCashWithdrawLimitExceeded.Error(),
		},
		{
			name:   "InternalServerError",
			cardID: testCardID,
			requestBody: requestBody{
				Amount: "100",
				Type:   "PURCHASE",
			},
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Pay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardService := NewMockService(ctrl)
			cardHandler := NewHandler(cardService)

			server := gin.New()
			server.POST("/cards/:id/transactions", cardHandler.Pay)

			tc.buildStubs(cardService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/cards/"+tc.cardID+"/transactions", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}

func TestList(t *testing.T) {
	transactions := []domain.Transaction{
		{
			Amount:      decimal.NewFromInt(100),
			Type:        domain.TypePurchase,
			Description: "groceries",
			CreatedAt:   testNow,
		},
		{
			Amount:      decimal.NewFromInt(50),
			Type:        domain.TypeWithdraw,
			Description: "atm",
			CreatedAt:   testNow.Add(time.Minute),
		},
	}

	testCases := []struct {
		name           string
		query          string
		buildStubs     func(cardService *MockService)
		wantStatusCode int
		wantCount      int
	}{
		{
			name:  "All",
			query: "",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					Transactions(gomock.Any(), gomock.Eq(testCardID)).
					Times(1).
					Return(transactions, nil)
			},
			wantStatusCode: http.StatusOK,
			wantCount:      2,
		},
		{
			name:  "ByType",
			query: "?type=WITHDRAW",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					TransactionsByType(gomock.Any(), gomock.Eq(testCardID), gomock.Eq(domain.TypeWithdraw)).
					Times(1).
					Return(transactions[1:], nil)
			},
			wantStatusCode: http.StatusOK,
			wantCount:      1,
		},
		{
			name:  "Since",
			query: "?since=" + testNow.Format(time.RFC3339),
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					TransactionsSince(gomock.Any(), gomock.Eq(testCardID), gomock.Any()).
					Times(1).
					Return(transactions[1:], nil)
			},
			wantStatusCode: http.StatusOK,
			wantCount:      1,
		},
		{
			name:  "BadSince",
			query: "?since=yesterday",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().TransactionsSince(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "UnknownType",
			query: "?type=CASHBACK",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().TransactionsByType(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardService := NewMockService(ctrl)
			cardHandler := NewHandler(cardService)

			server := gin.New()
			server.GET("/cards/:id/transactions", cardHandler.List)

			tc.buildStubs(cardService)

			req, err := http.NewRequest(http.MethodGet, "/cards/"+testCardID+"/transactions"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			var res struct {
				Data struct {
					Transactions []domain.Transaction `json:"transactions"`
				} `json:"data"`
			}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if got := len(res.Data.Transactions); got != tc.wantCount {
				t.Errorf("len(transactions)=%v, want %v", got, tc.wantCount)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardService := NewMockService(ctrl)
	cardService.EXPECT().
		TotalAmountByType(gomock.Any(), gomock.Eq(testCardID), gomock.Eq(domain.TypePurchase)).
		Times(1).
		Return(decimal.NewFromInt(130), nil)

	cardHandler := NewHandler(cardService)

	server := gin.New()
	server.GET("/cards/:id/transactions/total", cardHandler.Total)

	req, err := http.NewRequest(http.MethodGet, "/cards/"+testCardID+"/transactions/total?type=PURCHASE", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	var res struct {
		Data struct {
			Type  string          `json:"type"`
			Total decimal.Decimal `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Errorf("Decoding response body error: %v", err)
	}

	if !res.Data.Total.Equal(decimal.NewFromInt(130)) {
		t.Errorf("res.Data.Total=%v, want 130", res.Data.Total)
	}
}

func TestSetStatus(t *testing.T) {
	testCases := []struct {
		name           string
		status         string
		buildStubs     func(cardService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:   "OK",
			status: "BLOCKED",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					SetStatus(gomock.Any(), gomock.Eq(testCardID), gomock.Eq(domain.StatusBlocked)).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "UnknownStatus",
			status: "SUSPENDED",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Status is not a valid status",
		},
		{
			name:   "CardNotFound",
			status: "ACTIVE",
			buildStubs: func(cardService *MockService) {
				cardService.EXPECT().
					SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ErrCardNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrCardNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardService := NewMockService(ctrl)
			cardHandler := NewHandler(cardService)

			server := gin.New()
			server.PATCH("/cards/:id/status", cardHandler.SetStatus)

			tc.buildStubs(cardService)

			body, err := json.Marshal(map[string]string{"status": tc.status})
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPatch, "/cards/"+testCardID+"/status", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}
