package model

// AllCategoryID and AllCategoryName identify the synthetic "no filter" entry.
const (
	AllCategoryID   = "0"
	AllCategoryName = "ALL"
)

// Category is a catalog category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
}

// AllCategory is the synthetic entry meaning "no filter".
var AllCategory = Category{ID: AllCategoryID, Name: AllCategoryName}

// IsAll reports whether c is the synthetic "no filter" entry.
func (c Category) IsAll() bool {
	return c.Name == AllCategoryName
}

// WithAllCategory returns a new slice with AllCategory first, followed by cats.
func WithAllCategory(cats []Category) []Category {
	out := make([]Category, 0, len(cats)+1)
	out = append(out, AllCategory)
	return append(out, cats...)
}
