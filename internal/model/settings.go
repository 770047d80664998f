package model

// OrgSettings is the singleton organization configuration. Categories are
// an ordered set of labels; order is display-significant and labels are
// unique.
type OrgSettings struct {
	Name       string   `json:"name"`
	Subtitle   string   `json:"subtitle"`
	Categories []string `json:"categories"`
}

// DefaultOrgSettings returns the configuration substituted when no
// settings have been saved yet. It is not persisted until the first
// explicit settings save.
func DefaultOrgSettings() OrgSettings {
	return OrgSettings{
		Name:     "Community Press",
		Subtitle: "Stories we write together",
		Categories: []string{
			"General News",
			"Events",
			"Interviews",
			"Culture & Life",
			"Opinion",
			"Other",
		},
	}
}

// HasCategory reports whether label is part of the current taxonomy.
func (s OrgSettings) HasCategory(label string) bool {
	for _, c := range s.Categories {
		if c == label {
			return true
		}
	}
	return false
}
