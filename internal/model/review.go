package model

const (
	MinRating = 0
	MaxRating = 5
)

// Review is append-only: never mutated or deleted once written. CreatedAt is
// assigned by the server at submission time.
type Review struct {
	BaseModel
	ProductID string  `db:"product_id" json:"productId"`
	MemberID  string  `db:"member_id" json:"memberId"`
	Content   *string `db:"content" json:"content"`
	Rating    int     `db:"rating" json:"rating"`
}
