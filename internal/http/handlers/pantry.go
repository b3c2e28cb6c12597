package handlers

import (
	"net/http"
	"strings"

	"nutriflow/internal/domain"
)

type pantryItemRequest struct {
	UserID         int64    `json:"userId"`
	IngredientName string   `json:"ingredientName"`
	Quantity       *float64 `json:"quantity"`
	Unit           string   `json:"unit"`
}

func (req pantryItemRequest) item() (domain.PantryItem, bool) {
	name := strings.TrimSpace(req.IngredientName)
	if name == "" || (req.Quantity != nil && *req.Quantity < 0) {
		return domain.PantryItem{}, false
	}
	return domain.PantryItem{
		UserID:         req.UserID,
		IngredientName: name,
		Quantity:       req.Quantity,
		Unit:           strings.TrimSpace(req.Unit),
	}, true
}

func (a *App) ListPantry(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	items, err := a.Pantry.ListByUser(r.Context(), userID)
	if err != nil {
		a.fail(w, r, err, "pantry")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (a *App) AddPantryItem(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if !a.decode(w, r, &req) {
		return
	}
	item, valid := req.item()
	if !valid || item.UserID <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "userId and ingredientName are required")
		return
	}
	if _, err := a.Users.GetByID(r.Context(), item.UserID); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	if err := a.Pantry.Create(r.Context(), &item); err != nil {
		a.fail(w, r, err, "pantry item")
		return
	}
	a.json(w, http.StatusCreated, item)
}

// ReplacePantry overwrites the user's whole pantry with the supplied items.
func (a *App) ReplacePantry(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	var req struct {
		Items []pantryItemRequest `json:"items"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	items := make([]domain.PantryItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, valid := it.item()
		if !valid {
			a.error(w, http.StatusBadRequest, "bad_request", "every item needs an ingredientName and a non-negative quantity")
			return
		}
		items = append(items, item)
	}
	if _, err := a.Users.GetByID(r.Context(), userID); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	saved, err := a.Pantry.ReplaceForUser(r.Context(), userID, items)
	if err != nil {
		a.fail(w, r, err, "pantry")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": saved, "count": len(saved)})
}

func (a *App) DeletePantryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "itemId")
	if !ok {
		return
	}
	if err := a.Pantry.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "pantry item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
