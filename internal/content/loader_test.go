package content

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeSource struct {
	hero    []HeroVideo
	games   []FeaturedGame
	contact *ContactInfo

	heroErr    error
	gamesErr   error
	contactErr error
}

func (f *fakeSource) Ping(ctx context.Context) error { return nil }

func (f *fakeSource) HeroVideos(ctx context.Context) ([]HeroVideo, error) {
	return f.hero, f.heroErr
}

func (f *fakeSource) FeaturedGames(ctx context.Context) ([]FeaturedGame, error) {
	return f.games, f.gamesErr
}

func (f *fakeSource) ContactInfo(ctx context.Context) (*ContactInfo, error) {
	return f.contact, f.contactErr
}

func TestLoad_AllSectionsPresent(t *testing.T) {
	src := &fakeSource{
		hero:    []HeroVideo{{ID: 1, VideoURL: "/v.mp4", IsActive: true}},
		games:   []FeaturedGame{{ID: "g1", Title: "G1", IsActive: true}},
		contact: &ContactInfo{Email: "hello@studio.example"},
	}
	l := &Loader{Source: src, Log: zap.NewNop()}

	got := l.Load(context.Background())
	if len(got.Hero) != 1 || len(got.Games) != 1 || got.Contact == nil {
		t.Fatalf("unexpected content: %+v", got)
	}
}

func TestLoad_PartialFailureDegrades(t *testing.T) {
	src := &fakeSource{
		games:   []FeaturedGame{{ID: "g1", Title: "G1", IsActive: true}},
		contact: &ContactInfo{Email: "hello@studio.example"},
		heroErr: errors.New("hero_videos unavailable"),
	}
	l := &Loader{Source: src, Log: zap.NewNop()}

	got := l.Load(context.Background())
	if got.Hero == nil || len(got.Hero) != 0 {
		t.Fatalf("failed hero fetch should yield an empty section, got %v", got.Hero)
	}
	if len(got.Games) != 1 || got.Contact == nil {
		t.Fatalf("independent sections were lost: %+v", got)
	}
}

func TestLoad_TotalFailureNeverErrors(t *testing.T) {
	boom := errors.New("backend down")
	src := &fakeSource{heroErr: boom, gamesErr: boom, contactErr: boom}
	l := &Loader{Source: src, Log: zap.NewNop()}

	got := l.Load(context.Background())
	if got.Hero == nil || got.Games == nil {
		t.Fatalf("sections must be empty, not nil: %+v", got)
	}
	if len(got.Hero) != 0 || len(got.Games) != 0 || got.Contact != nil {
		t.Fatalf("expected everything empty: %+v", got)
	}
}

func TestMemSource_OnlyActiveRows(t *testing.T) {
	src := NewMemSource()
	src.hero = append(src.hero, HeroVideo{ID: 99, VideoURL: "/off.mp4", IsActive: false})

	hero, err := src.HeroVideos(context.Background())
	if err != nil {
		t.Fatalf("HeroVideos: %v", err)
	}
	for _, v := range hero {
		if !v.IsActive {
			t.Fatalf("inactive video leaked: %+v", v)
		}
	}
}
