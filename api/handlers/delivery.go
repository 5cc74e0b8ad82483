package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/gummi-coder/Novora-sub009/api/models"
	"github.com/gummi-coder/Novora-sub009/util"
)

func (h *Handler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	delivery, err := h.A.Webhooks.GetDelivery(r.Context(), chi.URLParam(r, "deliveryID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Delivery fetched successfully",
		models.DeliveryResponse{WebhookDelivery: delivery}, http.StatusOK))
}

func (h *Handler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	q := models.NewQueryListDeliveries(r.URL.Query().Get("limit"))

	deliveries, err := h.A.Webhooks.ListDeliveries(r.Context(), chi.URLParam(r, "webhookID"), q.Limit)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Deliveries fetched successfully", deliveries, http.StatusOK))
}

func (h *Handler) RetryDelivery(w http.ResponseWriter, r *http.Request) {
	delivery, err := h.A.Webhooks.RetryDelivery(r.Context(), chi.URLParam(r, "deliveryID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Delivery queued for retry",
		models.DeliveryResponse{WebhookDelivery: delivery}, http.StatusAccepted))
}
