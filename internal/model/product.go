package model

// Product is a catalog entry. The catalog is read-only from the API's point
// of view; rows are seeded out of band.
type Product struct {
	BaseModel
	Name     string  `db:"name" json:"name"`
	Category string  `db:"category" json:"category"`
	ImageURL *string `db:"image_url" json:"imageUrl"`
}
