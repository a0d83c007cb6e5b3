// Package careers serves the open-positions listing.
package careers

// Position is one opening on the careers page.
type Position struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Experience  string   `json:"experience"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Color       string   `json:"color"`
}

// AllDepartments is the sentinel meaning no department constraint.
const AllDepartments = "all"

// ByDepartment returns the positions in dept, preserving order. The
// sentinel (or empty string) returns everything.
func ByDepartment(positions []Position, dept string) []Position {
	if dept == "" || dept == AllDepartments {
		out := make([]Position, len(positions))
		copy(out, positions)
		return out
	}

	out := make([]Position, 0, len(positions))
	for _, p := range positions {
		if p.Department == dept {
			out = append(out, p)
		}
	}
	return out
}

// Departments lists the distinct departments, sentinel first, in first-
// occurrence order.
func Departments(positions []Position) []string {
	out := []string{AllDepartments}
	seen := map[string]bool{AllDepartments: true}

	for _, p := range positions {
		if seen[p.Department] {
			continue
		}
		seen[p.Department] = true
		out = append(out, p.Department)
	}
	return out
}

// OpenPositions is the current set of openings.
func OpenPositions() []Position {
	return []Position{
		{
			ID:          1,
			Title:       "Senior Unity Developer",
			Department:  "Engineering",
			Type:        "Full-time",
			Location:    "Remote",
			Experience:  "5+ years",
			Description: "Lead development of cutting-edge mobile and VR games using Unity engine.",
			Skills:      []string{"Unity", "C#", "3D Graphics", "Mobile Optimization"},
			Color:       "from-blue-500 to-cyan-500",
		},
		{
			ID:          2,
			Title:       "Game Artist",
			Department:  "Design",
			Type:        "Full-time",
			Location:    "Remote",
			Experience:  "3+ years",
			Description: "Create stunning 2D and 3D assets for our upcoming game titles.",
			Skills:      []string{"Blender", "Photoshop", "Substance", "Character Design"},
			Color:       "from-purple-500 to-pink-500",
		},
		{
			ID:          3,
			Title:       "DevOps Engineer",
			Department:  "Engineering",
			Type:        "Full-time",
			Location:    "Remote",
			Experience:  "4+ years",
			Description: "Build and maintain our cloud infrastructure and CI/CD pipelines.",
			Skills:      []string{"AWS", "Docker", "Kubernetes", "Terraform"},
			Color:       "from-green-500 to-teal-500",
		},
		{
			ID:          4,
			Title:       "Community Manager",
			Department:  "Marketing",
			Type:        "Full-time",
			Location:    "Remote",
			Experience:  "2+ years",
			Description: "Engage with our player community and build strong relationships.",
			Skills:      []string{"Social Media", "Discord", "Content Creation", "Community Events"},
			Color:       "from-orange-500 to-red-500",
		},
	}
}
