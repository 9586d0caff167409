package dto

import "github.com/devkeeb/gearlog/internal/model"

// InventoryItem is an inventory row with its product joined in.
type InventoryItem struct {
	model.InventoryProduct
	Product model.Product `db:"product"`
}

// InventoryItemResponse is the presentation shape of one inventory item.
type InventoryItemResponse struct {
	ID         string        `json:"id"`
	Product    model.Product `json:"product"`
	IsSelected bool          `json:"isSelected"`
}

func ToInventoryItemResponses(items []InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, InventoryItemResponse{
			ID:         item.ID,
			Product:    item.Product,
			IsSelected: item.Selected,
		})
	}
	return out
}
