package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "profile/internal/delivery/api/middleware"
	"profile/internal/delivery/api/validator"
	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	mockUsecase "profile/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// profileHandlerFixtures holds all test dependencies for profile handler tests.
type profileHandlerFixtures struct {
	echo      *echo.Echo
	profileUC *mockUsecase.MockProfileUsecase
}

func createTestProfileHandler(t *testing.T) profileHandlerFixtures {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	for _, route := range []struct {
		path string
		kind entity.Kind
	}{
		{path: "/customers", kind: entity.KindCustomer},
		{path: "/merchants", kind: entity.KindMerchant},
	} {
		g := e.Group(route.path)
		g.GET("", h.List(route.kind))
		g.POST("", h.Register(route.kind))
		g.GET("/email/:email", h.GetIDByEmail(route.kind))
		g.GET("/:id", h.Get(route.kind))
		g.PUT("/:id", h.Update(route.kind))
		g.DELETE("/:id", h.Delete(route.kind))
		g.PUT("/:id/blacklist", h.Blacklist(route.kind))
		g.DELETE("/:id/blacklist", h.Unblacklist(route.kind))
	}

	return profileHandlerFixtures{echo: e, profileUC: profileUC}
}

func (f profileHandlerFixtures) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

const validCustomerBody = `{
	"name": "Jane Doe",
	"emailAddress": "jane@example.com",
	"addressLine1": "1 MG Road",
	"phoneNumber": "+91 80 1234 5678",
	"pincode": "560001"
}`

func TestProfileHandler_Register_Success(t *testing.T) {
	fx := createTestProfileHandler(t)
	id := uuid.New()

	fx.profileUC.EXPECT().CreateProfile(mock.Anything, mock.AnythingOfType("*entity.Customer")).
		RunAndReturn(func(_ context.Context, p entity.Profile) (entity.Profile, error) {
			c := p.(*entity.Customer)
			assert.Equal(t, "Jane Doe", c.Name)
			assert.Equal(t, "560001", c.Pincode)
			c.ID = id
			c.Coordinates = &entity.Coordinates{Latitude: 12.9, Longitude: 77.6}
			c.RewardPoints = decimal.Zero

			return c, nil
		})

	rec, env := fx.do(t, http.MethodPost, "/customers", validCustomerBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, id.String(), got["customerId"])
	assert.InDelta(t, 12.9, got["latitude"], 1e-9)
	assert.NotContains(t, got, "merchantId")
	assert.NotContains(t, got, "blacklisted")
}

func TestProfileHandler_Register_ValidationFailure(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec, env := fx.do(t, http.MethodPost, "/customers", `{"name":"","emailAddress":"nope","pincode":"12"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Len(t, env.Error.Details, 3)
	fx.profileUC.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

func TestProfileHandler_Register_MalformedBody(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec, env := fx.do(t, http.MethodPost, "/customers", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestProfileHandler_Register_DuplicateEmail(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "failed to create profile"))

	rec, env := fx.do(t, http.MethodPost, "/customers", validCustomerBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", env.Error.Code)
	assert.Equal(t, "Email is already registered", env.Error.Message)
}

func TestProfileHandler_Register_ServerErrorsHideDetails(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "location service", err: errors.WithStack(domainerrors.ErrLocationService), wantCode: http.StatusServiceUnavailable, wantBody: "LOCATION_SERVICE_ERROR"},
		{name: "encryption", err: domainerrors.ErrEncryptionFailed.WithDetails("bad tag"), wantCode: http.StatusInternalServerError, wantBody: "ENCRYPTION_ERROR"},
		{name: "unclassified", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileHandler(t)
			fx.profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec, env := fx.do(t, http.MethodPost, "/customers", validCustomerBody)

			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, env.Error.Code)
			assert.Nil(t, env.Error.Details)
		})
	}
}

func TestProfileHandler_Update_PassesPathAndPayloadIDs(t *testing.T) {
	fx := createTestProfileHandler(t)
	id := uuid.New()
	other := uuid.New()

	fx.profileUC.EXPECT().UpdateProfile(mock.Anything, id, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, p entity.Profile) (entity.Profile, error) {
			assert.Equal(t, other, p.Base().ID)

			return nil, errors.WithStack(domainerrors.ErrProfileIDMismatch)
		})

	body := `{"merchantId":"` + other.String() + `","name":"Shop","emailAddress":"shop@example.com","pincode":"560001"}`
	rec, env := fx.do(t, http.MethodPut, "/merchants/"+id.String(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PROFILE_ID_MISMATCH", env.Error.Code)
}

func TestProfileHandler_Get(t *testing.T) {
	fx := createTestProfileHandler(t)
	id := uuid.New()
	merchant := &entity.Merchant{ProfileBase: entity.ProfileBase{ID: id, Name: "Shop"}, Blacklisted: true}

	fx.profileUC.EXPECT().GetProfileByID(mock.Anything, "merchant", id).Return(merchant, nil)

	rec, env := fx.do(t, http.MethodGet, "/merchants/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, &id, got.MerchantID)
	assert.True(t, *got.Blacklisted)
	assert.Nil(t, got.Latitude)
}

func TestProfileHandler_Get_MalformedID(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec, env := fx.do(t, http.MethodGet, "/customers/not-a-uuid", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVALID_PROFILE_ID", env.Error.Code)
}

func TestProfileHandler_GetIDByEmail(t *testing.T) {
	fx := createTestProfileHandler(t)
	id := uuid.New()
	customer := &entity.Customer{ProfileBase: entity.ProfileBase{ID: id}}

	fx.profileUC.EXPECT().GetProfileByEmailAddress(mock.Anything, "jane@example.com", "customer").Return(customer, nil)

	rec, env := fx.do(t, http.MethodGet, "/customers/email/jane@example.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customerId":"`+id.String()+`"}`, string(env.Data))
}

func TestProfileHandler_List(t *testing.T) {
	fx := createTestProfileHandler(t)
	customers := []entity.Profile{
		&entity.Customer{ProfileBase: entity.ProfileBase{ID: uuid.New(), Name: "A"}},
		&entity.Customer{ProfileBase: entity.ProfileBase{ID: uuid.New(), Name: "B"}},
	}

	fx.profileUC.EXPECT().GetProfilesByType(mock.Anything, "customer").Return(customers, nil)
	fx.profileUC.EXPECT().GetProfilesWithPagination(mock.Anything, "customer", 1, 1).
		Return(entity.NewPage(customers[1:], 1, 1, 2), nil)
	fx.profileUC.EXPECT().GetProfilesWithPagination(mock.Anything, "customer", 0, 0).
		Return(nil, domainerrors.ErrInvalidPagination.WithDetails("size must be positive"))

	rec, env := fx.do(t, http.MethodGet, "/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 2)

	rec, env = fx.do(t, http.MethodGet, "/customers?page=1&size=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page PageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "B", page.Items[0].Name)

	rec, env = fx.do(t, http.MethodGet, "/customers?size=0", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PAGINATION", env.Error.Code)
	assert.Equal(t, "size must be positive", env.Error.Details)

	rec, env = fx.do(t, http.MethodGet, "/customers?page=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PAGINATION", env.Error.Code)
}

func TestProfileHandler_DeleteAndBlacklistUseRouteKind(t *testing.T) {
	fx := createTestProfileHandler(t)
	id := uuid.New()

	fx.profileUC.EXPECT().DeleteProfile(mock.Anything, id, entity.KindCustomer).Return(nil)
	fx.profileUC.EXPECT().BlacklistProfile(mock.Anything, id, entity.KindMerchant).Return(nil)
	fx.profileUC.EXPECT().UnblacklistProfile(mock.Anything, id, entity.KindMerchant).
		Return(errors.WithStack(domainerrors.ErrInvalidProfileID))

	rec, _ := fx.do(t, http.MethodDelete, "/customers/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodPut, "/merchants/"+id.String()+"/blacklist", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodDelete, "/merchants/"+id.String()+"/blacklist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVALID_PROFILE_ID", env.Error.Code)
}
