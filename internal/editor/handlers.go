package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mufiz-dev/invoice-studio/internal/common"
	"github.com/mufiz-dev/invoice-studio/internal/docgen"
	"github.com/mufiz-dev/invoice-studio/internal/invoice"
	"github.com/mufiz-dev/invoice-studio/internal/render"
)

// Handler wires the editor service to HTTP.
type Handler struct {
	Svc      *Service
	Renderer render.Renderer
}

// Routes mounts the editor endpoints on the given router. Middlewares passed
// in wrap only the generate endpoint, which is the expensive one.
func (h *Handler) Routes(r chi.Router, generateMw ...func(http.Handler) http.Handler) {
	r.Post("/documents", h.Create)
	r.Route("/documents/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.UpdateHeader)
		r.Delete("/", h.Delete)
		r.Post("/items", h.AddItem)
		r.Patch("/items/{index}", h.UpdateItem)
		r.Delete("/items/{index}", h.RemoveItem)
		r.Get("/totals", h.Totals)
		r.Get("/preview", h.Preview)
		r.With(generateMw...).Post("/generate", h.Generate)
	})
}

// Create opens a new editing session. The body is optional; seedSample
// defaults to true so a fresh form matches the stock grid.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "editor service not configured", nil)
		return
	}
	payload := struct {
		SeedSample *bool `json:"seedSample"`
	}{}
	_ = json.NewDecoder(r.Body).Decode(&payload)
	seed := true
	if payload.SeedSample != nil {
		seed = *payload.SeedSample
	}
	id, doc := h.Svc.CreateDocument(seed)
	common.JSONData(w, http.StatusCreated, documentView(id, doc))
}

// Get returns the current document state with computed totals.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.Svc.GetDocument(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, documentView(id, doc))
}

// UpdateHeader applies a partial header update.
func (h *Handler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch HeaderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	doc, err := h.Svc.UpdateHeader(id, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, documentView(id, doc))
}

// Delete closes an editing session.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Svc.GetDocument(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.Svc.Store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem appends a row to the document.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	doc, err := h.Svc.AddItem(id, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, documentView(id, doc))
}

// UpdateItem patches the row addressed by its 1-based position.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	index, ok := rowIndex(w, r)
	if !ok {
		return
	}
	var patch ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	doc, err := h.Svc.UpdateItem(id, index, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, documentView(id, doc))
}

// RemoveItem deletes the row addressed by its 1-based position.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	index, ok := rowIndex(w, r)
	if !ok {
		return
	}
	doc, err := h.Svc.RemoveItem(id, index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, documentView(id, doc))
}

// Totals returns the aggregate values for the current item sequence.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	totals, err := h.Svc.Totals(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, totalsView(totals))
}

// Preview returns the resolved document tree, or rendered markup when
// format=html is requested.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	preview, err := h.Svc.Preview(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if r.URL.Query().Get("format") == "html" {
		if h.Renderer == nil {
			common.JSONError(w, http.StatusNotAcceptable, "NOT_ACCEPTABLE", "markup rendering not configured", nil)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.Renderer.Render(w, preview); err != nil {
			common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to render preview", nil)
		}
		return
	}
	common.JSONData(w, http.StatusOK, preview)
}

// Generate validates the document, calls the generation service and streams
// the resulting file back as a download.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.Svc.Generate(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unknown error", nil)
		return
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusBadRequest
		}
		code := appErr.Code
		if code == "" {
			code = "BAD_REQUEST"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	var genErr *docgen.Error
	if errors.As(err, &genErr) {
		common.JSONError(w, http.StatusBadGateway, "GENERATION_FAILED", genErr.Message, nil)
		return
	}
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "document not found", nil)
	case errors.Is(err, ErrRowOutOfRange):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "row not found", nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}

func rowIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 1 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid row index", nil)
		return 0, false
	}
	return index, true
}

func documentView(id string, doc invoice.Document) map[string]any {
	items := make([]map[string]any, 0, len(doc.Items))
	for i, item := range doc.Items {
		items = append(items, map[string]any{
			"number":      i + 1,
			"description": item.Description,
			"size":        item.SizeLabel,
			"hsn":         item.HSNCode,
			"quantity":    item.Quantity.String(),
			"listPrice":   item.ListPrice.String(),
			"discount":    item.DiscountPercent.String(),
			"rate":        item.UnitRate.StringFixed(2),
			"amount":      item.Amount.StringFixed(2),
		})
	}
	totals := invoice.Aggregate(doc)
	return map[string]any{
		"id":            id,
		"invoiceNumber": doc.InvoiceNumber,
		"invoiceDate":   doc.InvoiceDate,
		"orderNumber":   doc.OrderNumber,
		"orderDate":     doc.OrderDate,
		"buyer": map[string]any{
			"name":    doc.Buyer.Name,
			"address": doc.Buyer.Address,
			"city":    doc.Buyer.City,
			"pincode": doc.Buyer.Pincode,
			"gstin":   doc.Buyer.GSTIN,
		},
		"cgstRate": doc.CGSTPercent.String(),
		"sgstRate": doc.SGSTPercent.String(),
		"items":    items,
		"totals":   totalsView(totals),
	}
}

func totalsView(t invoice.Totals) map[string]any {
	return map[string]any{
		"totalQty":    t.TotalQuantity.StringFixed(2),
		"totalAmount": t.TotalAmount.StringFixed(2),
		"cgstAmount":  t.CGSTAmount.StringFixed(2),
		"sgstAmount":  t.SGSTAmount.StringFixed(2),
		"taxTotal":    t.TaxTotal.StringFixed(2),
		"grandTotal":  t.GrandTotal.StringFixed(2),
	}
}
