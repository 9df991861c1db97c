package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/cachinadev/turismo-app/internal/config"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/handler/dto"
	"github.com/cachinadev/turismo-app/internal/middleware"
	"github.com/cachinadev/turismo-app/internal/notification"
	"github.com/cachinadev/turismo-app/internal/service"
	"github.com/cachinadev/turismo-app/internal/service/ports"
)

const (
	refreshCookieName = "refresh_token"
	refreshCookiePath = "/api/auth"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var allowedUploadExts = map[string]string{
	".jpg":  "image",
	".jpeg": "image",
	".png":  "image",
	".webp": "image",
	".gif":  "image",
	".mp4":  "video",
	".webm": "video",
}

type CatalogSvc interface {
	Create(ctx context.Context, input domain.CreatePackageInput) (*domain.Package, error)
	Update(ctx context.Context, id string, input domain.UpdatePackageInput) (*domain.Package, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	GetBySlug(ctx context.Context, slug string, preview bool) (*domain.Package, error)
	List(ctx context.Context, f domain.PackageFilter) ([]*domain.Package, int, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context, page, limit int) ([]*domain.BookingWithPackage, int, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error)
}

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (*domain.User, *service.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *service.TokenPair, error)
	Me(ctx context.Context, id string) (*domain.User, error)
}

type Handler struct {
	catalog  CatalogSvc
	bookings BookingSvc
	auth     AuthSvc
	notifier ports.BookingNotifier

	uploads    config.UploadsConfig
	baseURL    string
	brand      string
	refreshTTL time.Duration

	now func() time.Time
}

func NewHandler(
	catalog CatalogSvc,
	bookings BookingSvc,
	auth AuthSvc,
	notifier ports.BookingNotifier,
	uploads config.UploadsConfig,
	baseURL, brand string,
	refreshTTL time.Duration,
) *Handler {
	return &Handler{
		catalog:    catalog,
		bookings:   bookings,
		auth:       auth,
		notifier:   notifier,
		uploads:    uploads,
		baseURL:    baseURL,
		brand:      brand,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: pair.Access,
	})
}

func (h *Handler) Refresh(c *ginext.Context) {
	token, err := c.Cookie(refreshCookieName)
	if err != nil || token == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing refresh token"})
			return
		}
		token = req.RefreshToken
	}

	user, pair, err := h.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: pair.Access,
	})
}

func (h *Handler) Logout(c *ginext.Context) {
	c.SetCookie(refreshCookieName, "", -1, refreshCookiePath, "", false, true)
	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) Me(c *ginext.Context) {
	user, err := h.auth.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) setRefreshCookie(c *ginext.Context, token string) {
	c.SetCookie(refreshCookieName, token, int(h.refreshTTL.Seconds()), refreshCookiePath, "", false, true)
}

// Packages

func (h *Handler) ListPackages(c *ginext.Context) {
	preview := c.Query("preview") == "1" && middleware.Role(c) != ""
	page, limit := pageParams(c)

	filter := domain.PackageFilter{
		Query:    c.Query("q"),
		City:     c.Query("city"),
		Category: c.Query("category"),
		Promo:    c.Query("promo"),
		Sort:     c.Query("sort"),
		Page:     page,
		Limit:    limit,
	}

	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}
	if v := c.Query("maxDur"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxDurationHours = &n
		}
	}

	switch {
	case preview && c.Query("active") != "":
		active := c.Query("active") == "true"
		filter.Active = &active
	case preview:
		// operators see everything
	default:
		active := true
		filter.Active = &active
	}

	items, total, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageListResponse(items, page, limit, total, h.baseURL, h.now()))
}

func (h *Handler) GetPackageBySlug(c *ginext.Context) {
	slug := c.Param("slug")
	if !slugRe.MatchString(slug) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "package not found"})
		return
	}

	preview := c.Query("preview") == "1" && middleware.Role(c) != ""
	pkg, err := h.catalog.GetBySlug(c.Request.Context(), slug, preview)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg, h.baseURL, h.now()))
}

func (h *Handler) GetPackageByID(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid package id"})
		return
	}

	pkg, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg, h.baseURL, h.now()))
}

func (h *Handler) CreatePackage(c *ginext.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := parseTimePtr(req.PromoStartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promoStartAt, expected RFC3339"})
		return
	}
	endAt, err := parseTimePtr(req.PromoEndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promoEndAt, expected RFC3339"})
		return
	}

	input := domain.CreatePackageInput{
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Country:       req.Country,
		Category:      req.Category,
		Price:         req.Price,
		Currency:      req.Currency,
		DurationHours: req.DurationHours,
		Languages:     req.Languages,
		Highlights:    req.Highlights,
		Includes:      req.Includes,
		Excludes:      req.Excludes,
		Media:         dto.ToMediaItems(req.Media),
		Location:      dto.ToLocation(req.Location),
		IsPromo:       req.IsPromo,
		PromoPercent:  req.PromoPercent,
		PromoPrice:    req.PromoPrice,
		PromoStartAt:  startAt,
		PromoEndAt:    endAt,
		Active:        req.Active,
	}

	pkg, err := h.catalog.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageResponse(pkg, h.baseURL, h.now()))
}

func (h *Handler) UpdatePackage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid package id"})
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := parseTimePtr(req.PromoStartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promoStartAt, expected RFC3339"})
		return
	}
	endAt, err := parseTimePtr(req.PromoEndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid promoEndAt, expected RFC3339"})
		return
	}

	input := domain.UpdatePackageInput{
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Country:       req.Country,
		Category:      req.Category,
		Price:         req.Price,
		Currency:      req.Currency,
		DurationHours: req.DurationHours,
		Languages:     req.Languages,
		Highlights:    req.Highlights,
		Includes:      req.Includes,
		Excludes:      req.Excludes,
		Location:      dto.ToLocation(req.Location),
		IsPromo:       req.IsPromo,
		PromoPercent:  req.PromoPercent,
		PromoPrice:    req.PromoPrice,
		PromoStartAt:  startAt,
		PromoEndAt:    endAt,
		Active:        req.Active,
	}
	if req.Media != nil {
		input.HasMedia = true
		input.Media = dto.ToMediaItems(*req.Media)
	}

	pkg, err := h.catalog.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg, h.baseURL, h.now()))
}

func (h *Handler) DeletePackage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid package id"})
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true, "id": id})
}

func (h *Handler) PackageBrochure(c *ginext.Context) {
	slug := c.Param("slug")
	if !slugRe.MatchString(slug) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "package not found"})
		return
	}

	preview := c.Query("preview") == "1" && middleware.Role(c) != ""
	pkg, err := h.catalog.GetBySlug(c.Request.Context(), slug, preview)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pdf, err := notification.BuildBrochurePDF(pkg, h.brand, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", slug+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		PackageID: req.PackageID,
		Date:      req.Date,
		People: domain.People{
			Adults:   req.People.Adults,
			Children: req.People.Children,
		},
		Customer: domain.Customer{
			Name:     req.Customer.Name,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
			Country:  req.Customer.Country,
			Language: req.Customer.Language,
		},
		Notes: req.Notes,
	}

	booking, err := h.bookings.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	page, limit := pageParams(c)

	items, total, err := h.bookings.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListResponse(items, page, limit, total))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Uploads

func (h *Handler) Upload(c *ginext.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing file field"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	kind, ok := allowedUploadExts[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unsupported file type"})
		return
	}
	if file.Size > h.uploads.MaxSizeBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file too large"})
		return
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploads.Dir, name)); err != nil {
		h.handleError(c, fmt.Errorf("save upload: %w", err))
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		URL:  "/uploads/" + name,
		Type: kind,
	})
}

// Contact

func (h *Handler) Contact(c *ginext.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "Consulta general"
	}

	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: subject,
		Message: strings.TrimSpace(req.Message),
	}
	h.notifier.NotifyContactMessage(context.WithoutCancel(c.Request.Context()), msg)

	c.JSON(http.StatusAccepted, ginext.H{"ok": true})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, domain.ErrStatusFinal):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pageParams(c *ginext.Context) (page, limit int) {
	page = intQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = intQuery(c, "limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func intQuery(c *ginext.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
