package http

import (
	"net/http"
	"strconv"

	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler обслуживает публичную витрину: каталог, карточку
// товара, фасеты и редактируемый контент.
type CatalogHandler struct {
	catalogUC usecase.CatalogUC
	contentUC usecase.ContentUC
	logger    logger.Logger
}

func NewCatalogHandler(catalogUC usecase.CatalogUC, contentUC usecase.ContentUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, contentUC: contentUC, logger: logger}
}

func (h *CatalogHandler) listCatalog(w http.ResponseWriter, r *http.Request) {
	q := ParseCatalogFilter(r.URL.Query())

	res, err := h.catalogUC.Query(r.Context(), q)
	if err != nil {
		h.logger.Warnf("catalog query failed: %v", err)
		WriteError(w, err)
		return
	}

	products := make([]ProductCardResponse, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, toProductCardResponse(&res.Products[i]))
	}

	WriteSuccess(w, http.StatusOK, CatalogResponse{Products: products, Total: res.Total})
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	card, err := h.catalogUC.GetProductCard(r.Context(), id)
	if err != nil {
		h.logger.Warnf("product card failed, id: %d: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductCardResponse(card))
}

func (h *CatalogHandler) getFacets(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogUC.GetFacets(r.Context())
	if err != nil {
		h.logger.Warnf("facets failed: %v", err)
		WriteError(w, err)
		return
	}

	brands := make([]BrandResponse, 0, len(res.Brands))
	for _, b := range res.Brands {
		brands = append(brands, BrandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug})
	}

	categories := make([]CategoryResponse, 0, len(res.Categories))
	for _, c := range res.Categories {
		categories = append(categories, CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}

	sizes := make([]SizeOptionResponse, 0, len(res.Sizes))
	for _, s := range res.Sizes {
		sizes = append(sizes, SizeOptionResponse{ID: s.ID, Value: s.Value})
	}

	colors := make([]ColorOptionResponse, 0, len(res.Colors))
	for _, c := range res.Colors {
		colors = append(colors, ColorOptionResponse{ID: c.ID, Value: c.Value, Label: c.Label})
	}

	seasons := make([]string, 0, len(res.Seasons))
	for _, s := range res.Seasons {
		seasons = append(seasons, string(s))
	}

	WriteSuccess(w, http.StatusOK, FacetsResponse{
		Brands:     brands,
		Categories: categories,
		Sizes:      sizes,
		Colors:     colors,
		Seasons:    seasons,
	})
}

func (h *CatalogHandler) getContent(w http.ResponseWriter, r *http.Request) {
	res, err := h.contentUC.GetContent(r.Context())
	if err != nil {
		h.logger.Warnf("content failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ContentResponse{
		Hero:    res.Hero,
		Tariffs: res.Tariffs,
		Rate: ExchangeRateResponse{
			CnyPerRub: res.Rate.CnyPerRub.String(),
			UpdatedAt: res.Rate.UpdatedAt,
		},
	})
}
