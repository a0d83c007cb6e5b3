package brands

import "context"

// StaticFetcher serves a fixed brand list when no database is
// configured (local development, tests).
type StaticFetcher struct {
	brands []Brand
}

func NewStaticFetcher() *StaticFetcher {
	return &StaticFetcher{brands: seedBrands()}
}

func (f *StaticFetcher) FetchBrands(ctx context.Context) ([]Brand, error) {
	out := make([]Brand, len(f.brands))
	copy(out, f.brands)
	return out, nil
}

func seedBrands() []Brand {
	return []Brand{
		{
			ID:          1,
			Name:        "Unity",
			Description: "Official engine partner for our mobile and VR titles",
			LogoURL:     "/images/brands/unity.svg",
			Color:       "from-gray-500 to-slate-600",
		},
		{
			ID:          2,
			Name:        "PlayStation",
			Description: "Console launch partner since 2022",
			LogoURL:     "/images/brands/playstation.svg",
			Color:       "from-blue-500 to-indigo-600",
		},
		{
			ID:          3,
			Name:        "Xbox",
			Description: "Day-one Game Pass releases",
			LogoURL:     "/images/brands/xbox.svg",
			Color:       "from-green-500 to-emerald-600",
		},
		{
			ID:          4,
			Name:        "Nintendo",
			Description: "Bringing our indie catalog to Switch",
			LogoURL:     "/images/brands/nintendo.svg",
			Color:       "from-red-500 to-rose-600",
		},
	}
}
