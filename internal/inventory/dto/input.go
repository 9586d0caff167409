package dto

type SetRepresentativeInput struct {
	MemberID           string
	InventoryProductID string

	// ProductID is accepted on the wire alongside the inventory product id but
	// is currently unused; the inventory product id is authoritative.
	ProductID *string
}
