package http

import (
	"net/http"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/logger"
)

// ContentHandler — правка контента витрины в админке.
type ContentHandler struct {
	contentUC usecase.ContentUC
	logger    logger.Logger
}

func NewContentHandler(contentUC usecase.ContentUC, logger logger.Logger) *ContentHandler {
	return &ContentHandler{contentUC: contentUC, logger: logger}
}

func (h *ContentHandler) updateHero(w http.ResponseWriter, r *http.Request) {
	var body domain.HeroBlock
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.contentUC.UpdateHero(r.Context(), &body); err != nil {
		h.logger.Warnf("hero update failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, body)
}

func (h *ContentHandler) updateTariffs(w http.ResponseWriter, r *http.Request) {
	var body []domain.DeliveryTariff
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.contentUC.UpdateTariffs(r.Context(), body); err != nil {
		h.logger.Warnf("tariffs update failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, body)
}

func (h *ContentHandler) updateRate(w http.ResponseWriter, r *http.Request) {
	var body UpdateRateRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.contentUC.UpdateRate(r.Context(), body.CnyPerRub); err != nil {
		h.logger.Warnf("rate update failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"cny_per_rub": body.CnyPerRub})
}
