package http

import (
	"context"
	"net/http"

	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/logger"
)

// DictionaryHandler — справочники каталога в админке.
type DictionaryHandler struct {
	dictUC usecase.DictionaryUC
	logger logger.Logger
}

func NewDictionaryHandler(dictUC usecase.DictionaryUC, logger logger.Logger) *DictionaryHandler {
	return &DictionaryHandler{dictUC: dictUC, logger: logger}
}

func (h *DictionaryHandler) createBrand(w http.ResponseWriter, r *http.Request) {
	var body DictionaryItemRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	brand, err := h.dictUC.CreateBrand(r.Context(), body.Name, body.Slug)
	if err != nil {
		h.logger.Warnf("brand create failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, BrandResponse{ID: brand.ID, Name: brand.Name, Slug: brand.Slug})
}

func (h *DictionaryHandler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.dictUC.DeleteBrand)
}

func (h *DictionaryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body DictionaryItemRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.dictUC.CreateCategory(r.Context(), body.Name, body.Slug)
	if err != nil {
		h.logger.Warnf("category create failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, CategoryResponse{ID: category.ID, Name: category.Name, Slug: category.Slug})
}

func (h *DictionaryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.dictUC.DeleteCategory)
}

func (h *DictionaryHandler) createSize(w http.ResponseWriter, r *http.Request) {
	var body DictionaryItemRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	size, err := h.dictUC.CreateSize(r.Context(), body.Value)
	if err != nil {
		h.logger.Warnf("size create failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, SizeOptionResponse{ID: size.ID, Value: size.Value})
}

func (h *DictionaryHandler) deleteSize(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.dictUC.DeleteSize)
}

func (h *DictionaryHandler) createColor(w http.ResponseWriter, r *http.Request) {
	var body DictionaryItemRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	color, err := h.dictUC.CreateColor(r.Context(), body.Value, body.Label)
	if err != nil {
		h.logger.Warnf("color create failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, ColorOptionResponse{ID: color.ID, Value: color.Value, Label: color.Label})
}

func (h *DictionaryHandler) deleteColor(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.dictUC.DeleteColor)
}

func (h *DictionaryHandler) deleteByID(w http.ResponseWriter, r *http.Request,
	del func(ctx context.Context, id int64) error) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := del(r.Context(), id); err != nil {
		h.logger.Warnf("dictionary delete failed, id: %d: %v", id, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
