package gamedata

// PathDef defines a starting character path loaded from JSON.
type PathDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "huscarl")
	Name        string `json:"name"`        // Display name (e.g., "Huscarl")
	Focus       string `json:"focus"`       // Primary stat the path focuses on
	Description string `json:"description"` // Flavour text
}

// PathsFile represents the structure of paths.json.
type PathsFile struct {
	Paths []PathDef `json:"paths"`
}

// LoadPaths loads path definitions from the embedded paths.json file.
func LoadPaths() ([]PathDef, error) {
	file, err := Load[PathsFile]("paths.json")
	if err != nil {
		return nil, err
	}
	return file.Paths, nil
}

// FindPath returns the path with the given ID, or nil if not found.
func FindPath(paths []PathDef, id string) *PathDef {
	for i := range paths {
		if paths[i].ID == id {
			return &paths[i]
		}
	}
	return nil
}
