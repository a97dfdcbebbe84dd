package tde

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bkraemer/tde-import/internal/htmltext"
	"github.com/bkraemer/tde-import/internal/match"
)

var (
	// rankingPattern matches the seed cell: team number, ranking, and an
	// optional doubles-ranking variant, e.g. "1-2" or "1-2-D4".
	rankingPattern = regexp.MustCompile(`^([0-9]+)-([0-9]+)(?:-D([0-9]+))?$`)

	// nationalityPattern matches the print-only flag label, e.g. "[GER]".
	nationalityPattern = regexp.MustCompile(`\[([A-Z]{2,})\]`)

	textIDPattern = regexp.MustCompile(`^[0-9-]+$`)
)

// rosterURL builds the secondary page address serving a team's season
// roster. The page name is the one variant-dependent part.
func rosterURL(host string, v Variant, team match.TeamInfo) string {
	return fmt.Sprintf("https://%s/sport/%s.aspx?id=%s&tid=%s",
		host, v.RosterPage, team.Season, team.ID)
}

// fetchRoster downloads and parses one team's roster page. A missing or
// unparseable roster yields (nil, nil): callers substitute an empty list,
// roster absence is never fatal. Only the fetch error itself is returned,
// and the assembler downgrades that to a warning too.
func (imp *Importer) fetchRoster(ctx context.Context, host string, v Variant, team match.TeamInfo) ([]match.Player, error) {
	body, err := imp.fetcher.Fetch(ctx, rosterURL(host, v, team))
	if err != nil {
		return nil, fmt.Errorf("fetching roster for team %s: %w", team.ID, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing roster page for team %s: %w", team.ID, err)
	}

	return parseRoster(doc, v), nil
}

// parseRoster extracts the gendered roster sub-tables. Both the male- and
// the female-labeled table must be present and non-empty; otherwise the
// roster as a whole counts as unavailable (nil), mirroring the all-or-
// nothing shape of the source page.
func parseRoster(doc *goquery.Document, v Variant) []match.Player {
	male := parsePlayerTable(captionedTable(doc, v.MaleLabels), "m")
	if len(male) == 0 {
		return nil
	}
	female := parsePlayerTable(captionedTable(doc, v.FemaleLabels), "f")
	if len(female) == 0 {
		return nil
	}
	return append(male, female...)
}

// captionedTable finds the first table.ruler whose caption starts with one
// of the accepted labels. Returns nil when no table matches.
func captionedTable(doc *goquery.Document, labels []string) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("table.ruler").EachWithBreak(func(i int, t *goquery.Selection) bool {
		caption := htmltext.Clean(t.Find("caption").First().Text())
		for _, label := range labels {
			if strings.HasPrefix(caption, label) {
				table = t
				return false
			}
		}
		return true
	})
	return table
}

// parsePlayerTable extracts the player rows of one gendered sub-table.
// Expected cells per row: seed ranking (optional), filler, name anchor
// ("Last, First"), flag, free-text id, birth year (optional).
func parsePlayerTable(table *goquery.Selection, gender string) []match.Player {
	if table == nil {
		return nil
	}

	players := make([]match.Player, 0)
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		tds := tr.ChildrenFiltered("td")
		if tds.Length() < 5 {
			return
		}

		nameAnchor := tr.Find(`td#playercell a[href*="player.aspx"]`).First()
		if nameAnchor.Length() == 0 {
			return
		}
		lastname, firstname, ok := splitPlayerName(nameAnchor.Text())
		if !ok {
			return
		}

		textID := htmltext.Clean(tds.Eq(4).Text())
		if !textIDPattern.MatchString(textID) {
			return
		}

		p := match.Player{
			Firstname: firstname,
			Lastname:  lastname,
			Name:      match.FullName(firstname, lastname),
			TextID:    textID,
			Gender:    gender,
		}

		if m := rankingPattern.FindStringSubmatch(htmltext.Clean(tds.Eq(0).Text())); m != nil {
			p.Ranking, _ = strconv.Atoi(m[2])
			if m[3] != "" {
				p.RankingD, _ = strconv.Atoi(m[3])
			}
		}

		if m := nationalityPattern.FindStringSubmatch(tr.Find("td.flagcell span.flag").Text()); m != nil {
			p.Nationality = m[1]
		}

		players = append(players, p)
	})
	return players
}

// splitPlayerName splits the "Lastname, Firstname" form the roster page
// prints into its parts.
func splitPlayerName(s string) (lastname, firstname string, ok bool) {
	parts := strings.SplitN(htmltext.Clean(s), ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	lastname = strings.TrimSpace(parts[0])
	firstname = strings.TrimSpace(parts[1])
	if lastname == "" || firstname == "" {
		return "", "", false
	}
	return lastname, firstname, true
}
