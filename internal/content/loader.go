package content

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loader assembles HomeContent from its Source. Fetch failures degrade
// to empty sections: the page renders with whatever arrived, and the
// failure only shows up in the logs.
type Loader struct {
	Source Source
	Log    *zap.Logger
}

// Load runs the three section fetches in parallel and never fails.
func (l *Loader) Load(ctx context.Context) HomeContent {
	var (
		wg      sync.WaitGroup
		hero    []HeroVideo
		games   []FeaturedGame
		contact *ContactInfo
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if hero, err = l.Source.HeroVideos(ctx); err != nil {
			l.Log.Error("fetch hero videos failed", zap.Error(err))
			hero = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if games, err = l.Source.FeaturedGames(ctx); err != nil {
			l.Log.Error("fetch featured games failed", zap.Error(err))
			games = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if contact, err = l.Source.ContactInfo(ctx); err != nil {
			l.Log.Error("fetch contact info failed", zap.Error(err))
			contact = nil
		}
	}()
	wg.Wait()

	if hero == nil {
		hero = []HeroVideo{}
	}
	if games == nil {
		games = []FeaturedGame{}
	}
	return HomeContent{Hero: hero, Games: games, Contact: contact}
}
