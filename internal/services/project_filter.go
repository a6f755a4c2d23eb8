package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alimgiray/projectboard/internal/models"
)

// DefaultRoles are always offered as role filters and form choices
var DefaultRoles = []string{"Engineer", "Designer", "Marketer"}

// DefaultSkills are offered on the collaboration request form
var DefaultSkills = []string{"Engineering", "Design", "Marketing", "Product", "Business Development"}

// FilterProjects returns the projects matching both the text query and the
// role selection, in their original order. An empty query matches every
// project; so does an empty role selection. A project matches the selection
// when it needs any one of the selected roles.
func FilterProjects(projects []*models.Project, query string, selectedRoles []string) []*models.Project {
	needle := strings.ToLower(query)

	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if matchesQuery(project, needle) && matchesRoles(project, selectedRoles) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

func matchesQuery(project *models.Project, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(project.Title), needle) ||
		strings.Contains(strings.ToLower(project.Description), needle)
}

// matchesRoles compares role names exactly; "engineer" does not select "Engineer"
func matchesRoles(project *models.Project, selectedRoles []string) bool {
	if len(selectedRoles) == 0 {
		return true
	}
	for _, role := range selectedRoles {
		if project.RolesNeeded.Contains(role) {
			return true
		}
	}
	return false
}

// DeriveRoleVocabulary returns the default roles plus every role needed by
// any of the projects, deduplicated and sorted ascending.
func DeriveRoleVocabulary(projects []*models.Project) []string {
	set := make(map[string]struct{}, len(DefaultRoles))
	for _, role := range DefaultRoles {
		set[role] = struct{}{}
	}
	for _, project := range projects {
		for _, role := range project.RolesNeeded {
			set[role] = struct{}{}
		}
	}

	roles := make([]string, 0, len(set))
	for role := range set {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// NormalizeSelection drops blanks and repeats, keeping first occurrences in order
func NormalizeSelection(values []string) models.StringList {
	seen := make(map[string]struct{}, len(values))
	selection := make(models.StringList, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		selection = append(selection, value)
	}
	return selection
}

// AddCustomRole appends a free-form role typed by the poster. Blank roles and
// roles already selected are ignored.
func AddCustomRole(roles models.StringList, custom string) models.StringList {
	custom = strings.TrimSpace(custom)
	if custom == "" || roles.Contains(custom) {
		return roles
	}
	return append(roles, custom)
}

// RelativeAge renders how long ago a project was posted
func RelativeAge(created, now time.Time) string {
	diff := now.Sub(created)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return created.Format("Jan 2, 2006")
	}
}
