package tde

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/bkraemer/tde-import/internal/league"
	"github.com/bkraemer/tde-import/internal/logger"
	"github.com/bkraemer/tde-import/internal/match"
)

// Fetcher retrieves a document by URL. It is called once for the primary
// match page and once per team for the roster page. Implementations own
// their timeout and retry policy; the pipeline never retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Importer converts a team match page into a normalized match.Record. It
// holds no per-request state, so a single Importer is safe for concurrent
// use.
type Importer struct {
	fetcher Fetcher
}

// NewImporter creates an Importer using the given retrieval collaborator.
func NewImporter(fetcher Fetcher) *Importer {
	return &Importer{fetcher: fetcher}
}

// Import fetches and normalizes the team match behind rawURL. The URL is
// validated before anything is fetched. Fatal conditions (unsupported URL,
// fetch failure, missing load-bearing fragments, unknown league) abort the
// whole import with no partial record; optional fragments degrade to
// empty/unset fields.
func (imp *Importer) Import(ctx context.Context, rawURL string) (*match.Record, error) {
	mu, err := ParseMatchURL(rawURL)
	if err != nil {
		return nil, err
	}

	body, err := imp.fetcher.Fetch(ctx, mu.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: match page: %v", ErrFetchFailed, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing match page: %w", err)
	}

	teams, err := extractTeams(doc)
	if err != nil {
		return nil, err
	}

	rec := &match.Record{
		TeamNames:       [2]string{teams[0].Name, teams[1].Name},
		TeamCompetition: true,
	}

	// The two roster fetches only depend on the team identifiers and
	// write to disjoint slots, so they run concurrently. A failed or
	// empty roster is tolerated and leaves an empty list.
	g, gctx := errgroup.WithContext(ctx)
	for i := range teams {
		i := i
		g.Go(func() error {
			players, err := imp.fetchRoster(gctx, mu.Host, mu.Variant, teams[i])
			if err != nil {
				logger.Warn("roster unavailable", logger.Fields{
					"team":   teams[i].Name,
					"season": teams[i].Season,
				})
				players = nil
			}
			if players == nil {
				players = []match.Player{}
			}
			rec.AllPlayers[i] = players
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	header, err := extractHeader(doc)
	if err != nil {
		return nil, err
	}
	division, err := extractDivision(doc)
	if err != nil {
		return nil, err
	}
	rec.LeagueKey, err = league.Resolve(league.Key(header, division))
	if err != nil {
		return nil, err
	}

	rec.Date, rec.Starttime, err = extractSchedule(doc)
	if err != nil {
		return nil, err
	}
	rec.Location = extractLocation(doc)
	rec.Umpires = extractUmpires(doc)

	rows, err := extractMatchRows(doc)
	if err != nil {
		return nil, err
	}
	rec.Matches = make([]match.SubMatch, 0, len(rows))
	for _, row := range rows {
		rec.Matches = append(rec.Matches, buildSubMatch(row, rec.TeamNames, rec.Date))
	}

	logger.Debug("teammatch imported", logger.Fields{
		"league_key": rec.LeagueKey,
		"matches":    len(rec.Matches),
	})
	return rec, nil
}

// buildSubMatch turns one results-table row into a SubMatch: discipline
// classification, completeness check against the expected line-up size, the
// deterministic identifier, and the eventsheet code where the name follows
// the strict discipline pattern.
func buildSubMatch(row matchRow, teamNames [2]string, date string) match.SubMatch {
	expected := match.ExpectedPlayers(row.name)

	var teams [2]match.ParticipantSet
	for i, side := range row.sides {
		teams[i] = match.ParticipantSet{Players: side}
	}

	return match.SubMatch{
		Setup: match.Setup{
			MatchName:    row.name,
			MatchID:      match.MatchID(teamNames, date, row.name),
			IsDoubles:    match.IsDoubles(row.name),
			Teams:        teams,
			Incomplete:   len(row.sides[0]) != expected || len(row.sides[1]) != expected,
			EventsheetID: match.EventsheetID(row.name),
		},
		NetworkScore: row.score,
	}
}
