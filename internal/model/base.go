package model

import "time"

// BaseModel holds the fields every persisted entity shares. Two entities are
// the same entity exactly when their IDs are equal.
type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
