package dto

import (
	"strings"

	"github.com/handiism/recipe-browser/internal/model"
)

// CategoriesResponse is the envelope of the categories endpoint.
type CategoriesResponse struct {
	Categories []JSONCategory `json:"categories"`
}

// JSONCategory represents one category object from the catalog.
type JSONCategory struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumb       string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

// ToCategory converts JSONCategory to a model.Category.
func (jc *JSONCategory) ToCategory() model.Category {
	return model.Category{
		ID:          strings.TrimSpace(jc.ID),
		Name:        strings.TrimSpace(jc.Name),
		Thumbnail:   strings.TrimSpace(jc.Thumb),
		Description: strings.TrimSpace(jc.Description),
	}
}
