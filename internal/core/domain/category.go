package domain

// Category labels transactions for reporting. Categories form a tree through
// ParentID; a nil parent marks a root category.
type Category struct {
	CategoryID string  `json:"categoryID"` // Primary Key (UUID)
	Name       string  `json:"name"`
	ParentID   *string `json:"parentID,omitempty"`
	AuditFields
}

// CategoryNode is one node of the category tree with its children attached.
type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children"`
}
