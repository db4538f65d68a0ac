package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// badRequestErrors показываются клиенту как есть с кодом 400.
var badRequestErrors = []error{
	e.ErrCartEmpty,
	e.ErrCustomerNameRequired,
	e.ErrContactChannelRequired,
	e.ErrContactValueRequired,
	e.ErrInvalidTelegram,
	e.ErrInvalidPhone,
	e.ErrInvalidQuantity,
	e.ErrUnknownOrderStatus,
	e.ErrInvalidStatusChange,
	e.ErrProductNameRequired,
	e.ErrPriceMustBePositive,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrUnknownCurrency,
	e.ErrRateMustBePositive,
	e.ErrMissingFields,
	e.ErrExpectedMultipart,
	e.ErrTooManyImages,
	e.ErrNoImages,
	e.ErrFileTooLarge,
	e.ErrUnsupportedMediaType,
	e.ErrInvalidBody,
	e.ErrStatusBadRequest,
}

// ToHTTPResponse отображает ошибку usecase-слоя в HTTP-код и сообщение.
// Сообщения бизнес-ошибок отдаются клиенту как есть; всё прочее
// схлопывается в 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	}

	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, sentinel.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSONBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrInvalidBody)
	}

	return nil
}

// parsePrice разбирает цену из формы: положительное число,
// не больше двух знаков после запятой.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	if !d.IsPositive() {
		return decimal.Decimal{}, e.ErrPriceMustBePositive
	}

	if d.Exponent() < -2 {
		return decimal.Decimal{}, e.ErrPricePrecision
	}

	// Верхняя граница защищает от опечаток вида лишнего нуля
	if d.GreaterThan(decimal.NewFromInt(100_000_000)) {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	return d, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseProductForm собирает SaveProductReq из multipart-формы админки.
// Изображения разбираются отдельно через parseImages.
func parseProductForm(r *http.Request) (*usecase.SaveProductReq, error) {
	name := r.FormValue("name")
	slug := r.FormValue("slug")
	priceStr := r.FormValue("price")
	currency := r.FormValue("currency")

	if name == "" || slug == "" || priceStr == "" || currency == "" {
		return nil, e.Wrap(fmt.Sprintf("name: %s, slug: %s, price: %s, currency: %s", name, slug, priceStr, currency), e.ErrMissingFields)
	}

	price, err := parsePrice(priceStr)
	if err != nil {
		return nil, err
	}

	brandID, err := parseFormInt64(r, "brand_id")
	if err != nil {
		return nil, err
	}

	categoryID, err := parseFormInt64(r, "category_id")
	if err != nil {
		return nil, err
	}

	req := &usecase.SaveProductReq{
		Name:        name,
		Slug:        slug,
		Description: r.FormValue("description"),
		BrandID:     brandID,
		CategoryID:  categoryID,
		Price:       price,
		Currency:    domain.Currency(currency),
		Sizes:       cleanStrings(r.Form["sizes"], ""),
		Colors:      cleanStrings(r.Form["colors"], ""),
	}

	if raw := r.FormValue("season"); raw != "" {
		season, ok := domain.ParseSeason(raw)
		if !ok {
			return nil, e.Wrap("season: "+raw, e.ErrMissingFields)
		}
		req.Season = season
	}

	return req, nil
}

func parseFormInt64(r *http.Request, field string) (int64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, e.Wrap(field, e.ErrMissingFields)
	}

	var id int64
	if _, err := fmt.Sscanf(raw, "%d", &id); err != nil || id <= 0 {
		return 0, e.Wrap(field, e.ErrMissingFields)
	}

	return id, nil
}

func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
