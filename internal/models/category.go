package models

// Category represents a category row. ParentID is NULL for roots.
type Category struct {
	CategoryID string  `db:"category_id"` // Primary Key (UUID)
	Name       string  `db:"name"`
	ParentID   *string `db:"parent_id"` // nullable
	AuditFields
}
