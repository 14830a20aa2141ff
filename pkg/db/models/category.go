package models

// Category is a node in the two-level category tree. Parents have a nil
// ParentID; children point at a parent.
type Category struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string  `gorm:"column:name;not null"`
	Icon     *string `gorm:"column:icon"`
	ParentID *int64  `gorm:"column:parent_id"`
}
