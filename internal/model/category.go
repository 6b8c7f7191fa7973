package model

const CategoryDefault = "Personal"

// GoalCategories maps the known categories to their display colors.
// The set is presentational: goals may carry any category string, but only
// these get a dedicated color in clients.
var GoalCategories = map[string]string{
	"Work":          "#3B82F6",
	"Personal":      "#10B981",
	"Health":        "#EF4444",
	"Learning":      "#F59E0B",
	"Finance":       "#8B5CF6",
	"Relationships": "#EC4899",
	"Creative":      "#06B6D4",
	"Other":         "#6B7280",
}
