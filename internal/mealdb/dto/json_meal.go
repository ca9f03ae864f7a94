package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/handiism/recipe-browser/internal/model"
)

// MealsResponse is the envelope of the search, filter and lookup endpoints.
// Meals is nil when the catalog has no match.
type MealsResponse struct {
	Meals []JSONMeal `json:"meals"`
}

// JSONMeal represents one meal object from the catalog.
//
// Summary records from the filter endpoint only fill ID, Name and Thumb.
type JSONMeal struct {
	ID           string  `json:"idMeal"`
	Name         string  `json:"strMeal"`
	Thumb        string  `json:"strMealThumb"`
	Category     *string `json:"strCategory"`
	Area         *string `json:"strArea"`
	Instructions *string `json:"strInstructions"`
	Tags         *string `json:"strTags"`
	YouTube      *string `json:"strYoutube"`
	Source       *string `json:"strSource"`

	// Ingredients and Measures are filled from strIngredientN / strMeasureN.
	Ingredients [model.MaxIngredients]string `json:"-"`
	Measures    [model.MaxIngredients]string `json:"-"`
}

// UnmarshalJSON decodes the named fields and folds the numbered
// ingredient/measure fields into arrays. Null values decode as "".
func (jm *JSONMeal) UnmarshalJSON(data []byte) error {
	type plain JSONMeal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for i := 0; i < model.MaxIngredients; i++ {
		p.Ingredients[i] = rawString(raw[fmt.Sprintf("strIngredient%d", i+1)])
		p.Measures[i] = rawString(raw[fmt.Sprintf("strMeasure%d", i+1)])
	}

	*jm = JSONMeal(p)
	return nil
}

// rawString decodes a JSON string, treating null, absent and non-string
// values as empty.
func rawString(msg json.RawMessage) string {
	if len(msg) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return ""
	}
	return s
}

// ToRecipe converts JSONMeal to a model.Recipe.
func (jm *JSONMeal) ToRecipe() model.Recipe {
	r := model.Recipe{
		ID:           strings.TrimSpace(jm.ID),
		Name:         strings.TrimSpace(jm.Name),
		Thumbnail:    strings.TrimSpace(jm.Thumb),
		Category:     deref(jm.Category),
		Area:         deref(jm.Area),
		Instructions: deref(jm.Instructions),
		YouTube:      deref(jm.YouTube),
		Source:       deref(jm.Source),
	}

	// Pairs with an empty ingredient are skipped.
	for i := 0; i < model.MaxIngredients; i++ {
		name := strings.TrimSpace(jm.Ingredients[i])
		if name == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, model.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(jm.Measures[i]),
		})
	}

	for _, tag := range strings.Split(deref(jm.Tags), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			r.Tags = append(r.Tags, tag)
		}
	}

	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
