package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/cachinadev/turismo-app/internal/config"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/handler/dto"
	hmocks "github.com/cachinadev/turismo-app/internal/handler/mocks"
	"github.com/cachinadev/turismo-app/internal/service"
	pmocks "github.com/cachinadev/turismo-app/internal/service/ports/mocks"
)

type testEnv struct {
	catalog    *hmocks.MockCatalogSvc
	bookings   *hmocks.MockBookingSvc
	auth       *hmocks.MockAuthSvc
	notifier   *pmocks.MockBookingNotifier
	uploadsDir string
	router     http.Handler
}

func setupHandler(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		catalog:  hmocks.NewMockCatalogSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		auth:     hmocks.NewMockAuthSvc(t),
		notifier: pmocks.NewMockBookingNotifier(t),
	}
	env.uploadsDir = t.TempDir()

	h := NewHandler(
		env.catalog,
		env.bookings,
		env.auth,
		env.notifier,
		config.UploadsConfig{Dir: env.uploadsDir, MaxSizeBytes: 1 << 20},
		"",
		"Turismo Test",
		24*time.Hour,
	)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		api.GET("/packages", h.ListPackages)
		api.GET("/packages/:slug", h.GetPackageBySlug)
		api.POST("/packages", h.CreatePackage)
		api.PUT("/packages/:id", h.UpdatePackage)
		api.DELETE("/packages/:id", h.DeletePackage)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)

		api.POST("/uploads", h.Upload)
		api.POST("/contact", h.Contact)
	}

	env.router = r
	return env
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Packages ---

func TestHandler_ListPackages_PublicDefaultsToActive(t *testing.T) {
	env := setupHandler(t)

	promo := &domain.Package{
		ID:           uuid.New().String(),
		Title:        "Islas Uros",
		Slug:         "islas-uros",
		Price:        100,
		Currency:     "PEN",
		IsPromo:      true,
		PromoPercent: 20,
		Active:       true,
	}

	var captured domain.PackageFilter
	env.catalog.EXPECT().List(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, f domain.PackageFilter) { captured = f }).
		Return([]*domain.Package{promo}, 1, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/packages?promo=active", nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured.Active)
	assert.True(t, *captured.Active)
	assert.Equal(t, "active", captured.Promo)

	var resp dto.PackageListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Pages)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].IsPromoActive)
	require.NotNil(t, resp.Items[0].EffectivePrice)
	assert.Equal(t, 80.0, *resp.Items[0].EffectivePrice)
	assert.Equal(t, 20, resp.Items[0].DiscountPercent)
}

func TestHandler_GetPackageBySlug_MalformedSlug(t *testing.T) {
	env := setupHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/packages/Not_A_Slug", nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetPackageBySlug_NotFound(t *testing.T) {
	env := setupHandler(t)

	env.catalog.EXPECT().GetBySlug(mock.Anything, "islas-uros", false).
		Return(nil, domain.ErrPackageNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/packages/islas-uros", nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreatePackage_Success(t *testing.T) {
	env := setupHandler(t)

	created := &domain.Package{
		ID:    uuid.New().String(),
		Title: "Islas Uros",
		Slug:  "islas-uros",
		Price: 150,
	}
	env.catalog.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)

	w := doJSON(t, env.router, http.MethodPost, "/api/packages", dto.CreatePackageRequest{
		Title:       "Islas Uros",
		Description: "Visita a las islas flotantes",
		Price:       150,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PackageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "islas-uros", resp.Slug)
}

func TestHandler_CreatePackage_SlugConflict(t *testing.T) {
	env := setupHandler(t)

	env.catalog.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSlugTaken)

	w := doJSON(t, env.router, http.MethodPost, "/api/packages", dto.CreatePackageRequest{
		Title:       "Islas Uros",
		Description: "desc",
		Price:       150,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdatePackage_InvalidID(t *testing.T) {
	env := setupHandler(t)

	w := doJSON(t, env.router, http.MethodPut, "/api/packages/not-a-uuid", dto.UpdatePackageRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeletePackage_Success(t *testing.T) {
	env := setupHandler(t)

	id := uuid.New().String()
	env.catalog.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/packages/"+id, nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	env := setupHandler(t)

	pkgID := uuid.New().String()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		PackageID:  pkgID,
		Status:     domain.BookingStatusPending,
		TotalPrice: 150,
	}
	env.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, env.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		PackageID: pkgID,
		Date:      "2030-06-01",
		People:    dto.PeoplePayload{Adults: 2, Children: 1},
		Customer:  dto.CustomerPayload{Name: "Ana Quispe", Email: "ana@example.com"},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
	assert.Equal(t, 150.0, resp.TotalPrice)
}

func TestHandler_CreateBooking_ValidationError(t *testing.T) {
	env := setupHandler(t)

	env.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, env.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		PackageID: uuid.New().String(),
		Date:      "2000-01-01",
		Customer:  dto.CustomerPayload{Name: "Ana", Email: "ana@example.com"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_TerminalConflict(t *testing.T) {
	env := setupHandler(t)

	id := uuid.New().String()
	env.bookings.EXPECT().UpdateStatus(mock.Anything, id, "Cancelled").
		Return(nil, domain.ErrStatusFinal)

	w := doJSON(t, env.router, http.MethodPatch, "/api/bookings/"+id+"/status",
		dto.UpdateBookingStatusRequest{Status: "Cancelled"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidID(t *testing.T) {
	env := setupHandler(t)

	w := doJSON(t, env.router, http.MethodPatch, "/api/bookings/42/status",
		dto.UpdateBookingStatusRequest{Status: "Cancelled"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Auth ---

func TestHandler_Login_SetsRefreshCookie(t *testing.T) {
	env := setupHandler(t)

	user := &domain.User{ID: "u1", Name: "Operador", Email: "ops@turismo.pe", Role: domain.RoleAdmin}
	pair := &service.TokenPair{Access: "access-token", Refresh: "refresh-token"}
	env.auth.EXPECT().Login(mock.Anything, "ops@turismo.pe", "secret123").Return(user, pair, nil)

	w := doJSON(t, env.router, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ops@turismo.pe",
		Password: "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "ops@turismo.pe", resp.User.Email)

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "refresh_token=refresh-token")
	assert.Contains(t, cookie, "Path=/api/auth")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupHandler(t)

	env.auth.EXPECT().Login(mock.Anything, "ops@turismo.pe", "nope").
		Return(nil, nil, domain.ErrInvalidCredentials)

	w := doJSON(t, env.router, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ops@turismo.pe",
		Password: "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Contact ---

func TestHandler_Contact_Accepted(t *testing.T) {
	env := setupHandler(t)

	env.notifier.EXPECT().NotifyContactMessage(mock.Anything, mock.Anything).Return()

	w := doJSON(t, env.router, http.MethodPost, "/api/contact", dto.ContactRequest{
		Name:    "Ana",
		Email:   "Ana@Example.com",
		Message: "Quisiera más información",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

// --- Uploads ---

func TestHandler_Upload_StoresFile(t *testing.T) {
	env := setupHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "image", resp.Type)
	assert.Contains(t, resp.URL, "/uploads/")
	assert.Equal(t, ".png", filepath.Ext(resp.URL))

	saved := filepath.Join(env.uploadsDir, filepath.Base(resp.URL))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestHandler_Upload_RejectsUnknownExtension(t *testing.T) {
	env := setupHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "malware.exe")
	require.NoError(t, err)
	_, err = fw.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
