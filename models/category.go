package models

// CategoryCount is a view model for the categories page: one visible
// category and how many articles carry it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
