package catalog

import "context"

// MemStore serves the built-in catalog. The slice is treated as
// immutable; List hands out copies so callers can't disturb it.
type MemStore struct {
	games []Game
}

func NewMemStore() *MemStore {
	return &MemStore{games: seedGames()}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Game, error) {
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Game, bool, error) {
	for _, g := range s.games {
		if g.ID == id {
			return g, true, nil
		}
	}
	return Game{}, false, nil
}

func price(p float64) *float64 { return &p }

func seedGames() []Game {
	return []Game{
		{
			ID:               "chrono-nexus",
			Title:            "Chrono Nexus",
			Description:      "An epic time-travel adventure where your choices shape the future of civilization.",
			ShortDescription: "Time-travel RPG with branching narratives",
			Image:            "/images/games/chrono-nexus.jpg",
			Price:            29.99,
			OriginalPrice:    price(39.99),
			Rating:           4.8,
			ReviewCount:      1250,
			Players:          "500K+",
			ReleaseDate:      "2023-03-15",
			Platforms:        []string{"PC", "PS5", "Xbox Series X"},
			Genres:           []string{"Action RPG", "Adventure", "Single Player"},
			Features:         []string{"Open World", "Choice Matters", "Time Manipulation"},
			Tags:             []string{"RPG", "Adventure", "Single Player", "Open World"},
			Status:           StatusAvailable,
			IsFeatured:       true,
			IsOnSale:         true,
			Color:            "from-blue-500 to-cyan-500",
		},
		{
			ID:               "nebula-drift",
			Title:            "Nebula Drift",
			Description:      "Explore the cosmos in this stunning space exploration and survival game.",
			ShortDescription: "Space exploration and survival simulator",
			Image:            "/images/games/nebula-drift.jpg",
			Price:            24.99,
			Rating:           4.6,
			ReviewCount:      890,
			Players:          "300K+",
			ReleaseDate:      "2023-07-22",
			Platforms:        []string{"PC", "PS5", "Nintendo Switch"},
			Genres:           []string{"Space Sim", "Survival", "Exploration"},
			Features:         []string{"Procedural Generation", "Base Building", "Multiplayer"},
			Tags:             []string{"Space", "Survival", "Multiplayer", "Exploration"},
			Status:           StatusAvailable,
			Color:            "from-purple-500 to-pink-500",
		},
		{
			ID:               "shadow-protocol",
			Title:            "Shadow Protocol",
			Description:      "A tactical stealth game set in a cyberpunk future. Hack, sneak, and outsmart your enemies.",
			ShortDescription: "Cyberpunk stealth action game",
			Image:            "/images/games/shadow-protocol.jpg",
			Price:            34.99,
			Rating:           4.9,
			ReviewCount:      2100,
			Players:          "750K+",
			ReleaseDate:      "2024-01-10",
			Platforms:        []string{"PC", "PS5", "Xbox Series X"},
			Genres:           []string{"Stealth", "Action", "Cyberpunk"},
			Features:         []string{"Cyberpunk Setting", "Tactical Combat", "Branching Story"},
			Tags:             []string{"Stealth", "Action", "Cyberpunk", "Single Player"},
			Status:           StatusAvailable,
			IsFeatured:       true,
			Color:            "from-green-500 to-teal-500",
		},
		{
			ID:               "aether-legends",
			Title:            "Aether Legends",
			Description:      "Competitive multiplayer battle arena with unique heroes and strategic gameplay.",
			ShortDescription: "Competitive MOBA with unique heroes",
			Image:            "/images/games/aether-legends.jpg",
			Price:            0,
			Rating:           4.7,
			ReviewCount:      3500,
			Players:          "2M+",
			ReleaseDate:      "2022-11-05",
			Platforms:        []string{"PC", "Mobile"},
			Genres:           []string{"MOBA", "Multiplayer", "Competitive"},
			Features:         []string{"Competitive", "Regular Updates", "Esports Ready"},
			Tags:             []string{"MOBA", "Multiplayer", "Free to Play", "Competitive"},
			Status:           StatusAvailable,
			Color:            "from-orange-500 to-red-500",
		},
		{
			ID:               "echoes-of-tomorrow",
			Title:            "Echoes of Tomorrow",
			Description:      "Narrative-driven mystery where you unravel secrets in a haunted futuristic city.",
			ShortDescription: "Narrative mystery in a futuristic city",
			Image:            "/images/games/echoes-tomorrow.jpg",
			Price:            19.99,
			OriginalPrice:    price(24.99),
			Rating:           4.5,
			ReviewCount:      430,
			Players:          "200K+",
			ReleaseDate:      "2024-12-01",
			Platforms:        []string{"PC", "PS5", "Xbox Series X"},
			Genres:           []string{"Mystery", "Adventure", "Story Rich"},
			Features:         []string{"Story Rich", "Atmospheric", "Puzzle Solving"},
			Tags:             []string{"Mystery", "Adventure", "Story Rich", "Single Player"},
			Status:           StatusComingSoon,
			IsFeatured:       true,
			IsOnSale:         true,
			Color:            "from-amber-500 to-yellow-500",
		},
		{
			ID:               "rift-runners",
			Title:            "Rift Runners",
			Description:      "Fast-paced platformer with dimension-hopping mechanics and speedrun potential.",
			ShortDescription: "Dimension-hopping speedrun platformer",
			Image:            "/images/games/rift-runners.jpg",
			Price:            14.99,
			Rating:           4.4,
			ReviewCount:      320,
			Players:          "150K+",
			ReleaseDate:      "2024-02-28",
			Platforms:        []string{"PC", "Nintendo Switch"},
			Genres:           []string{"Platformer", "Action", "Indie"},
			Features:         []string{"Speedrun Focused", "Level Editor", "Community Maps"},
			Tags:             []string{"Platformer", "Indie", "Speedrun", "Multiplayer"},
			Status:           StatusAvailable,
			Color:            "from-indigo-500 to-purple-500",
		},
	}
}
