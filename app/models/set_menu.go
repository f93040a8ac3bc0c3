package models

import "strings"

// SetMenu is one entry of the feast menu catalog. Price is a whole number of
// dong.
type SetMenu struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Ingredients string `json:"ingredients"` // newline-joined
}

// IngredientLines splits Ingredients back into its lines.
func (m SetMenu) IngredientLines() []string {
	if m.Ingredients == "" {
		return nil
	}
	return strings.Split(m.Ingredients, "\n")
}
