package store

import (
	"strings"

	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/samber/lo"
)

// Filter returns the applications whose company or position contains query
// (case-insensitive) and whose status matches. An empty status or "all"
// matches every status. Relative order is preserved.
func Filter(apps []models.Application, query string, status string) []models.Application {
	q := strings.ToLower(query)
	return lo.Filter(apps, func(app models.Application, _ int) bool {
		searchMatch := strings.Contains(strings.ToLower(app.Company), q) ||
			strings.Contains(strings.ToLower(app.Position), q)
		statusMatch := status == "" || status == models.StatusFilterAll ||
			string(app.Status) == status
		return searchMatch && statusMatch
	})
}
