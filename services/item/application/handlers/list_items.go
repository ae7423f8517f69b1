package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
)

// ListItemsResponse is a page of items.
type ListItemsResponse struct {
	Items  []ItemResponse `json:"items"`
	Total  int            `json:"total"  example:"42"`
	Limit  int            `json:"limit"  example:"50"`
	Offset int            `json:"offset" example:"0"`
} // @name ListItemsResponse

// ListItemsHandler handles GET /items.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists items alphabetically by name.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		active			query		bool	false	"Filter by status"
//	@Param		category		query		string	false	"Exact category"	Enums(pieces, boards, clocks, supplies)
//	@Param		color			query		string	false	"Case-insensitive substring of color"
//	@Param		needs_reorder	query		bool	false	"Only items at or below their reorder level"
//	@Param		limit			query		int		false	"Page size (default 50, max 200)"
//	@Param		offset			query		int		false	"Records to skip"
//	@Success	200				{object}	ListItemsResponse
//	@Failure	400				{object}	httpx.ErrorBody
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		httpx.BadValue(w, err.Error())
		return
	}

	items, total, err := h.svc.Item.List(r.Context(), f)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListItemsResponse{
		Items:  make([]ItemResponse, len(items)),
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	for i, it := range items {
		resp.Items[i] = NewItemResponse(it)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func parseFilter(r *http.Request) (repositories.Filter, error) {
	var f repositories.Filter
	var err error

	if f.Limit, f.Offset, err = httpx.Pagination(r); err != nil {
		return f, err
	}
	if f.Active, err = httpx.QueryBool(r, "active"); err != nil {
		return f, err
	}
	reorder, err := httpx.QueryBool(r, "needs_reorder")
	if err != nil {
		return f, err
	}
	f.NeedsReorder = reorder != nil && *reorder

	if c := r.URL.Query().Get("category"); c != "" {
		category, ok := models.ParseCategory(c)
		if !ok {
			return f, fmt.Errorf("category must be one of: %s", models.CategoryNames())
		}
		f.Category = category
	}
	f.Color = r.URL.Query().Get("color")
	return f, nil
}
