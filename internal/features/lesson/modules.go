package lesson

// ModuleGroup is a run of consecutive lessons sharing a module name.
type ModuleGroup struct {
	Name    string   `json:"name"`
	Lessons []Lesson `json:"lessons"`
}

// GroupByModule partitions an ordered lesson list into module groups.
// Grouping is positional: a new group starts whenever the module name
// changes from the previous lesson, so a name that reappears later in
// the sequence starts a fresh group rather than merging with the
// earlier one. Lesson order within each group is preserved.
func GroupByModule(lessons []Lesson) []ModuleGroup {
	if len(lessons) == 0 {
		return []ModuleGroup{}
	}

	groups := make([]ModuleGroup, 0)
	for _, lsn := range lessons {
		if len(groups) == 0 || groups[len(groups)-1].Name != lsn.ModuleName {
			groups = append(groups, ModuleGroup{Name: lsn.ModuleName})
		}
		last := &groups[len(groups)-1]
		last.Lessons = append(last.Lessons, lsn)
	}

	return groups
}
