package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/randompkg"
	"github.com/go-fin/fin-api/pkg/web"
)

func TestVerifyAccount(t *testing.T) {
	account := domain.Account{
		ID:        randompkg.String(32),
		CPF:       randompkg.CPF(),
		Name:      randompkg.Owner(),
		Statement: []domain.Transaction{},
	}

	testCases := []struct {
		name           string
		cpfHeader      string
		buildStubs     func(resolver *MockAccountResolver)
		wantStatusCode int
		wantError      string
	}{
		{
			name:      "OK",
			cpfHeader: account.CPF,
			buildStubs: func(resolver *MockAccountResolver) {
				resolver.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.CPF)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "NoHeader",
			cpfHeader: "",
			buildStubs: func(resolver *MockAccountResolver) {
				resolver.EXPECT().
					Get(gomock.Any(), gomock.Eq("")).
					Times(1).
					Return(domain.Account{}, domain.ErrCustomerNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrCustomerNotFound.Error(),
		},
		{
			name:      "UnknownCustomer",
			cpfHeader: "00000000000",
			buildStubs: func(resolver *MockAccountResolver) {
				resolver.EXPECT().
					Get(gomock.Any(), gomock.Eq("00000000000")).
					Times(1).
					Return(domain.Account{}, domain.ErrCustomerNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrCustomerNotFound.Error(),
		},
		{
			name:      "InternalError",
			cpfHeader: account.CPF,
			buildStubs: func(resolver *MockAccountResolver) {
				resolver.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.CPF)).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
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
			resolver := NewMockAccountResolver(ctrl)
			tc.buildStubs(resolver)

			gin.SetMode(gin.TestMode)
			server := gin.New()

			var gotAccount domain.Account

			server.GET("/protected", VerifyAccount(resolver), func(gctx *gin.Context) {
				gotAccount = AccountFromContext(gctx)
				gctx.JSON(http.StatusOK, gin.H{})
			})

			request, err := http.NewRequest(http.MethodGet, "/protected", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if tc.cpfHeader != "" {
				request.Header.Set(CPFHeaderKey, tc.cpfHeader)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusOK {
				var res web.JSONError
				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(account, gotAccount); diff != "" {
				t.Errorf("resolved account mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
