package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/gummi-coder/Novora-sub009/api/models"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/util"
)

func (h *Handler) CreateWebhook(w http.ResponseWriter, r *http.Request) {
	var cw models.CreateWebhook
	if err := util.ReadJSON(r, &cw); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	if err := cw.Validate(); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	webhook, err := h.A.Webhooks.CreateWebhook(r.Context(), chi.URLParam(r, "tenantID"), cw.Name, cw.URL, cw.Events, cw.Transform())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Webhook created successfully",
		models.NewWebhookResponse(webhook, true), http.StatusCreated))
}

func (h *Handler) ListWebhooks(w http.ResponseWriter, r *http.Request) {
	webhooks, err := h.A.Webhooks.ListWebhooks(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Webhooks fetched successfully",
		models.NewWebhookListResponse(webhooks), http.StatusOK))
}

func (h *Handler) GetWebhook(w http.ResponseWriter, r *http.Request) {
	webhook, err := h.A.Webhooks.GetWebhook(r.Context(), chi.URLParam(r, "webhookID"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Webhook fetched successfully",
		models.NewWebhookResponse(webhook, false), http.StatusOK))
}

func (h *Handler) UpdateWebhookStatus(w http.ResponseWriter, r *http.Request) {
	var us models.UpdateWebhookStatus
	if err := util.ReadJSON(r, &us); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	if err := us.Validate(); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	webhook, err := h.A.Webhooks.UpdateWebhookStatus(r.Context(), chi.URLParam(r, "webhookID"), datastore.WebhookStatus(us.Status))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Webhook status updated successfully",
		models.NewWebhookResponse(webhook, false), http.StatusOK))
}

func (h *Handler) DeleteWebhook(w http.ResponseWriter, r *http.Request) {
	if err := h.A.Webhooks.DeleteWebhook(r.Context(), chi.URLParam(r, "webhookID")); err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Webhook deleted successfully", nil, http.StatusOK))
}

func (h *Handler) TriggerWebhook(w http.ResponseWriter, r *http.Request) {
	var tw models.TriggerWebhook
	if err := util.ReadJSON(r, &tw); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	if err := tw.Validate(); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	delivery, err := h.A.Webhooks.TriggerWebhook(r.Context(), chi.URLParam(r, "webhookID"), tw.Event, []byte(tw.Payload))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Webhook triggered successfully",
		models.DeliveryResponse{WebhookDelivery: delivery}, http.StatusAccepted))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	resp := newServiceErrResponse(err)
	if resp.StatusCode >= http.StatusInternalServerError {
		log.FromContext(r.Context()).WithError(err).Error("request failed")
	}
	_ = render.Render(w, r, resp)
}
