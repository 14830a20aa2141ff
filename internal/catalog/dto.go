package catalog

// CategorySummary is a top-level category row with a children marker.
type CategorySummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Icon        *string `json:"icon"`
	HasChildren bool    `json:"has_children"`
}

// CategoryChild is a second-level category row.
type CategoryChild struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Icon     *string `json:"icon"`
	ParentID int64   `json:"parent_id"`
}

// CategoryNode is a top-level category with its nested children.
type CategoryNode struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Icon          *string         `json:"icon"`
	Subcategories []CategoryChild `json:"subcategories"`
}
