package httpadapter

import (
	"encoding/json"
	"net/http"
)

// ProductsRequest pages through the catalog. PageInfo is the cursor
// returned by the previous page.
type ProductsRequest struct {
	PageInfo string `json:"pageInfo"`
}

// ProductRequest names one product. The id may be sent as a number or a
// numeric string.
type ProductRequest struct {
	ProductID json.Number `json:"productId"`
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	var req ProductsRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "products", err)
		return
	}
	page, err := h.svc.Catalog.ListProducts(r.Context(), credentials(r).Shopify, req.PageInfo)
	if err != nil {
		h.writeError(w, r, "products", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "product", err)
		return
	}
	p, err := h.svc.Catalog.Product(r.Context(), credentials(r).Shopify, req.ProductID.String())
	if err != nil {
		h.writeError(w, r, "product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleBrand(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Catalog.AnalyzeStore(r.Context(), credentials(r))
	if err != nil {
		h.writeError(w, r, "brand", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
