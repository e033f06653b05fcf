package types

import "time"

// Category is one node of the service category tree. Depth 1 nodes are the
// top-level categories shown in the home grid; deeper nodes refine them.
type Category struct {
	ID        string    `db:"id" json:"id"`
	ParentID  *string   `db:"parent_id" json:"parentId"`
	Depth     int       `db:"depth" json:"depth"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
