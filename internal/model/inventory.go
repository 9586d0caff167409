package model

// InventoryProduct records that a member owns a product. At most one row per
// (member_id, product_id), and at most one selected row per member; both are
// backed by unique indexes, not just application checks.
type InventoryProduct struct {
	BaseModel
	MemberID  string `db:"member_id" json:"memberId"`
	ProductID string `db:"product_id" json:"productId"`
	Selected  bool   `db:"selected" json:"selected"`
}
