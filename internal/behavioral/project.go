package behavioral

// ProjectActivity is the session and message volume of one project.
type ProjectActivity struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions"`
	Messages int    `json:"messages"`
}

// computeProjects groups sessions by project in first-encounter order.
// Sessions without a project are ignored.
func computeProjects(sessions []*Session) []ProjectActivity {
	index := make(map[string]int)
	projects := make([]ProjectActivity, 0)

	for _, s := range sessions {
		if s.Project == "" {
			continue
		}
		i, ok := index[s.Project]
		if !ok {
			i = len(projects)
			index[s.Project] = i
			projects = append(projects, ProjectActivity{Name: s.Project})
		}
		projects[i].Sessions++
		projects[i].Messages += s.MessageCount()
	}
	return projects
}
