package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/service/auth"
	"realty_analyzer/internal/domain/service/deal"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/internal/server"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/logx"
	"realty_analyzer/pkg/rest"
	"realty_analyzer/pkg/tests"
)

const referenceBody = `{
	"purchasePrice": "300000",
	"downPaymentPercent": 20,
	"interestRate": 7,
	"loanTerm": 30,
	"monthlyRent": 2000,
	"propertyTax": 3000,
	"insurance": 1200,
	"hoaFees": "not a number"
}`

type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]entity.User
}

func (m *memoryUsers) Create(_ context.Context, user entity.User) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == user.Email {
			return entity.User{}, domain.NewError(errcodes.EmailAlreadyInUse, "email already in use")
		}
	}

	m.nextID++
	user.ID = m.nextID
	m.byID[user.ID] = user

	return user, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email value.Email) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}

	return entity.User{}, domain.NewError(errcodes.UserNotFound, "user not found")
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return entity.User{}, domain.NewError(errcodes.UserNotFound, "user not found")
	}

	return u, nil
}

type memoryDeals struct {
	mu    sync.Mutex
	deals map[value.DealID]entity.Deal
}

func (m *memoryDeals) Create(_ context.Context, d entity.Deal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deals[d.ID] = d

	return nil
}

func (m *memoryDeals) Get(_ context.Context, id value.DealID, ownerID int64) (entity.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deals[id]
	if !ok || d.OwnerID != ownerID {
		return entity.Deal{}, domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	return d, nil
}

func (m *memoryDeals) List(_ context.Context, ownerID int64, limit, offset int) ([]entity.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []entity.Deal

	for _, d := range m.deals {
		if d.OwnerID == ownerID {
			result = append(result, d)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if offset >= len(result) {
		return []entity.Deal{}, nil
	}

	return result[offset:min(len(result), offset+limit)], nil
}

func (m *memoryDeals) Delete(_ context.Context, id value.DealID, ownerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deals[id]
	if !ok || d.OwnerID != ownerID {
		return domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	delete(m.deals, id)

	return nil
}

func (m *memoryDeals) SetAISummary(context.Context, value.DealID, string) error {
	return nil
}

type fakeInsights struct {
	enabled bool
}

func (f fakeInsights) Enabled() bool {
	return f.enabled
}

func (f fakeInsights) Analyze(
	context.Context,
	entity.PropertyParameters,
	entity.FinancialReport,
	value.Location,
) entity.Insights {
	return entity.Insights{
		Investment: &entity.InvestmentInsight{
			Summary:     "Rent does not cover costs.",
			SummaryHTML: "<p>Rent does not cover costs.</p>\n",
		},
	}
}

type fakeMarket struct{}

func (fakeMarket) MarketSentiment(_ context.Context, location value.Location) (entity.MarketSentiment, error) {
	if !location.Valid() {
		return entity.MarketSentiment{}, domain.NewFieldError(errcodes.InvalidLocation, "location", "must be 1 to 120 characters")
	}

	return entity.MarketSentiment{
		Location:  location,
		Sentiment: value.SentimentBearish,
		Outlook:   "Inventory is piling up.",
	}, nil
}

func newTestAPI(t *testing.T) tests.APIClient {
	t.Helper()

	authService := auth.NewService(
		&memoryUsers{byID: make(map[int64]entity.User)},
		auth.Options{Secret: "test-secret", TTL: time.Hour, Issuer: "realty-analyzer", BcryptCost: bcrypt.MinCost},
	)
	dealService := deal.NewService(&memoryDeals{deals: make(map[value.DealID]entity.Deal)})

	srv := server.NewServer(
		server.NewAuthServer(authService),
		server.NewAnalyzeServer(fakeInsights{enabled: true}),
		server.NewDealServer(dealService),
		server.NewMarketServer(fakeMarket{}),
	)

	httpServer := httptest.NewServer(server.NewRouter(srv, server.RouterOptions{
		SensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
	}))
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(httpServer.URL, httpServer.Client())
}

func register(t *testing.T, api tests.APIClient, email string) string {
	t.Helper()

	var response rest.AuthResponse

	resp, err := api.Post(context.Background(), "/api/auth/register", nil, rest.RegisterRequest{
		Email:    email,
		Password: "correct horse",
		Name:     "Investor",
	}, &response, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, response.Token)

	return response.Token
}

func TestAnalyze(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	api := newTestAPI(t)

	testCases := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		wantVerdict string
		wantAI      bool
	}{
		{
			name:        "reference property with insights",
			body:        referenceBody,
			wantStatus:  http.StatusOK,
			wantVerdict: "AVOID",
			wantAI:      true,
		},
		{
			name:        "insights turned off",
			body:        strings.Replace(referenceBody, "{", `{"includeAi": false,`, 1),
			wantStatus:  http.StatusOK,
			wantVerdict: "AVOID",
		},
		{
			name:       "zero purchase price",
			body:       `{"purchasePrice": 0, "monthlyRent": 2000}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errcodes.InvalidPropertyParameters.String(),
		},
		{
			name:       "broken json",
			body:       `{"purchasePrice": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   errcodes.ValidationError.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				response rest.AnalyzeResponse
				errResp  rest.Error
			)

			resp, err := api.PostJSON(ctx, "/api/analyze", nil, tc.body, &response, &errResp)
			rq.NoError(err)
			rq.Equal(tc.wantStatus, resp.StatusCode)

			if tc.wantCode != "" {
				rq.False(errResp.Success)
				rq.Equal(tc.wantCode, string(errResp.Code))
				rq.NotEmpty(errResp.Error)

				return
			}

			rq.True(response.Success)
			rq.Equal(tc.wantVerdict, response.Analysis.Recommendation.Verdict)
			rq.InDelta(1596.73, response.Analysis.MonthlyNumbers.Mortgage, 0.01)
			rq.InDelta(15960.0, response.Analysis.AnnualNumbers.NOI, 0.01)
			rq.InDelta(5.32, response.Analysis.Metrics.CapRate, 1e-9)
			rq.Zero(response.Analysis.MonthlyNumbers.HOA)
			rq.Equal(tc.wantAI, response.AI != nil)
		})
	}
}

func TestAuthFlow(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	api := newTestAPI(t)

	token := register(t, api, "Investor@Example.com")

	var errResp rest.Error

	resp, err := api.Post(ctx, "/api/auth/register", nil, rest.RegisterRequest{
		Email:    "investor@example.com",
		Password: "another password",
		Name:     "Copy",
	}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, resp.StatusCode)
	rq.Equal(errcodes.EmailAlreadyInUse.String(), string(errResp.Code))

	resp, err = api.Post(ctx, "/api/auth/register", nil, rest.RegisterRequest{
		Email:    "short@example.com",
		Password: "short",
		Name:     "Short",
	}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.InvalidPasswordFormat.String(), string(errResp.Code))

	resp, err = api.Post(ctx, "/api/auth/login", nil, rest.LoginRequest{
		Email:    "investor@example.com",
		Password: "wrong password",
	}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode)
	rq.Equal(errcodes.CredentialsMismatch.String(), string(errResp.Code))

	var login rest.AuthResponse

	resp, err = api.Post(ctx, "/api/auth/login", nil, rest.LoginRequest{
		Email:    "investor@example.com",
		Password: "correct horse",
	}, &login, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.NotEmpty(login.Token)

	resp, err = api.Get(ctx, "/api/auth/me", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode)
	rq.Equal(errcodes.AccessTokenInvalid.String(), string(errResp.Code))

	resp, err = api.Get(ctx, "/api/auth/me", tests.BearerHeader("garbage"), nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode)
	rq.Equal(errcodes.AccessTokenInvalid.String(), string(errResp.Code))

	var me rest.UserResponse

	resp, err = api.Get(ctx, "/api/auth/me", tests.BearerHeader(token), &me, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("investor@example.com", me.User.Email)
	rq.Equal("Investor", me.User.Name)
}

func TestDeals(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	api := newTestAPI(t)

	owner := tests.BearerHeader(register(t, api, "owner@example.com"))
	stranger := tests.BearerHeader(register(t, api, "stranger@example.com"))

	var errResp rest.Error

	resp, err := api.PostJSON(ctx, "/api/deals", nil, referenceBody, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusUnauthorized, resp.StatusCode)

	body := strings.Replace(referenceBody, "{", `{"name": "Main St duplex", "location": "Austin, TX",`, 1)

	var created rest.DealResponse

	resp, err = api.PostJSON(ctx, "/api/deals", owner, body, &created, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal("Main St duplex", created.Deal.Name)
	rq.Equal("Austin, TX", created.Deal.Location)
	rq.Equal("AVOID", created.Deal.Verdict)
	rq.NotNil(created.Analysis)
	rq.InDelta(created.Analysis.MonthlyNumbers.CashFlow, created.Deal.CashFlow, 1e-9)
	rq.Equal(300000.0, created.Deal.Params.PurchasePrice)

	resp, err = api.PostJSON(ctx, "/api/deals", owner, referenceBody, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.InvalidPropertyParameters.String(), string(errResp.Code))

	var list rest.DealListResponse

	resp, err = api.Get(ctx, "/api/deals?limit=500", owner, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(list.Deals, 1)
	rq.Equal(deal.MaxPageSize, list.Limit)

	resp, err = api.Get(ctx, "/api/deals", stranger, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Empty(list.Deals)

	resp, err = api.Get(ctx, "/api/deals?limit=-1", owner, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.InvalidPaging.String(), string(errResp.Code))

	dealPath := "/api/deals/" + created.Deal.ID

	var got rest.DealResponse

	resp, err = api.Get(ctx, dealPath, owner, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(created.Deal.ID, got.Deal.ID)
	rq.Nil(got.Analysis)

	resp, err = api.Get(ctx, dealPath, stranger, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(errcodes.DealNotFound.String(), string(errResp.Code))

	resp, err = api.Get(ctx, "/api/deals/not-a-uuid", owner, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.InvalidDealID.String(), string(errResp.Code))

	resp, err = api.Delete(ctx, dealPath, stranger, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)

	var deleted rest.Success

	resp, err = api.Delete(ctx, dealPath, owner, &deleted, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(deleted.Success)

	resp, err = api.Get(ctx, dealPath, owner, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestMarketSentiment(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	api := newTestAPI(t)

	var response rest.MarketSentimentResponse

	resp, err := api.Get(ctx, "/api/market/sentiment?location=Austin%2C%20TX", nil, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Austin, TX", response.Sentiment.Location)
	rq.Equal("bearish", response.Sentiment.Sentiment)
	rq.NotNil(response.Sentiment.Factors)

	var errResp rest.Error

	resp, err = api.Get(ctx, "/api/market/sentiment", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.InvalidLocation.String(), string(errResp.Code))
}
