package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// AdminProductHandler — управление товарами в админке.
type AdminProductHandler struct {
	productsUC usecase.ProductsAdminUC
	logger     logger.Logger
}

func NewAdminProductHandler(productsUC usecase.ProductsAdminUC, logger logger.Logger) *AdminProductHandler {
	return &AdminProductHandler{productsUC: productsUC, logger: logger}
}

func (h *AdminProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	id, err := h.productsUC.AddProduct(r.Context(), req)
	if err != nil {
		h.logger.Warnf("product create failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *AdminProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	if err := h.productsUC.UpdateProduct(r.Context(), id, req); err != nil {
		h.logger.Warnf("product update failed, id: %d: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"id": id})
}

func (h *AdminProductHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.productsUC.ArchiveProduct(r.Context(), id); err != nil {
		h.logger.Warnf("product archive failed, id: %d: %v", id, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseRequest разбирает multipart-форму товара; изображения опциональны.
func (h *AdminProductHandler) parseRequest(w http.ResponseWriter, r *http.Request) (*usecase.SaveProductReq, bool) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return nil, false
	}

	req, err := parseProductForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return nil, false
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil && !errors.Is(err, e.ErrNoImages) {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return nil, false
	}
	req.Images = images

	return req, true
}

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrNotFound
	}

	return id, nil
}
