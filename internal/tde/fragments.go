package tde

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bkraemer/tde-import/internal/htmltext"
	"github.com/bkraemer/tde-import/internal/match"
)

var (
	// nameSuffixPattern strips the trailing team-number parenthetical the
	// site appends to some team names, e.g. "TV Refrath (8-2)".
	nameSuffixPattern = regexp.MustCompile(`\s*\([0-9-]+\)$`)

	// matchNamePattern validates a discipline-slot name cell. Both the
	// code-first ("HD1") and the ordinal-first ("2. HE") form appear in
	// the wild.
	matchNamePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9. ]*$`)

	datePattern  = regexp.MustCompile(`[0-9]{1,2}\.[0-9]{1,2}\.[0-9]{4,}`)
	timePattern  = regexp.MustCompile(`\b[0-9]{2}:[0-9]{2}\b`)
	scorePattern = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)
)

// extractTeams locates the heading with the two team anchors and returns
// one TeamInfo per side, in page order. The season and team identifiers
// come from the anchor hrefs and key the roster fetches.
func extractTeams(doc *goquery.Document) ([2]match.TeamInfo, error) {
	var teams [2]match.TeamInfo

	anchors := doc.Find(`h3 a[href*="team.aspx"]`)
	if anchors.Length() < 2 {
		return teams, fmt.Errorf("%w: expected 2 team anchors, found %d", ErrNoTeamNames, anchors.Length())
	}

	var parseErr error
	anchors.Slice(0, 2).Each(func(i int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		u, err := url.Parse(href)
		if err != nil {
			parseErr = fmt.Errorf("%w: bad team anchor %q", ErrNoTeamNames, href)
			return
		}
		q := u.Query()
		season := q.Get("id")
		teamID := q.Get("team")
		if season == "" || teamID == "" {
			parseErr = fmt.Errorf("%w: team anchor %q lacks id/team", ErrNoTeamNames, href)
			return
		}
		teams[i] = match.TeamInfo{
			Season: season,
			ID:     teamID,
			Name:   cleanTeamName(a.Text()),
		}
	})
	if parseErr != nil {
		return teams, parseErr
	}
	return teams, nil
}

func cleanTeamName(s string) string {
	return nameSuffixPattern.ReplaceAllString(htmltext.Clean(s), "")
}

// extractHeader returns the competition's top-level title heading.
func extractHeader(doc *goquery.Document) (string, error) {
	title := doc.Find("div.title h3").First()
	if title.Length() == 0 {
		return "", ErrNoHeader
	}
	header := htmltext.Clean(title.Text())
	if header == "" {
		return "", ErrNoHeader
	}
	return header, nil
}

// labeledCell finds the value cell of a label/value table row, e.g. the td
// next to <th>Staffel:</th>. Returns nil when no row carries the label.
func labeledCell(doc *goquery.Document, label string) *goquery.Selection {
	var cell *goquery.Selection
	doc.Find("th").EachWithBreak(func(i int, th *goquery.Selection) bool {
		if htmltext.Clean(th.Text()) == label {
			cell = th.Next()
			return false
		}
		return true
	})
	if cell == nil || cell.Length() == 0 {
		return nil
	}
	return cell
}

// cellValue prefers the text of an anchor inside the cell (the usual
// layout) and falls back to the cell's own text.
func cellValue(cell *goquery.Selection) string {
	if a := cell.Find("a").First(); a.Length() > 0 {
		return htmltext.Clean(a.Text())
	}
	return htmltext.Clean(cell.Text())
}

// extractDivision returns the division/subdivision label ("Staffel").
func extractDivision(doc *goquery.Document) (string, error) {
	cell := labeledCell(doc, "Staffel:")
	if cell == nil {
		return "", ErrNoDivision
	}
	division := cellValue(cell)
	if division == "" {
		return "", ErrNoDivision
	}
	return division, nil
}

// extractSchedule splits the "Spieltermin" cell into date and start time.
// The cell reads like "Sonntag 12.03.2017 14:00", with the time usually
// wrapped in a span.time.
func extractSchedule(doc *goquery.Document) (date, starttime string, err error) {
	cell := labeledCell(doc, "Spieltermin:")
	if cell == nil {
		return "", "", ErrNoSchedule
	}

	text := htmltext.Clean(cell.Text())
	date = datePattern.FindString(text)

	starttime = htmltext.Clean(cell.Find("span.time").First().Text())
	if !timePattern.MatchString(starttime) {
		starttime = timePattern.FindString(text)
	}

	if date == "" || starttime == "" {
		return "", "", fmt.Errorf("%w: cannot split %q", ErrNoSchedule, text)
	}
	return date, starttime, nil
}

// extractLocation returns the venue, or "" when the page omits it.
func extractLocation(doc *goquery.Document) string {
	cell := labeledCell(doc, "Spielort:")
	if cell == nil {
		return ""
	}
	return cellValue(cell)
}

// extractUmpires returns the umpires line, or "" when the page omits it.
// The label varies slightly between site variants, so a substring match
// has to do.
func extractUmpires(doc *goquery.Document) string {
	var umpires string
	doc.Find("th").EachWithBreak(func(i int, th *goquery.Selection) bool {
		if strings.Contains(th.Text(), "Schiedsrichter") {
			umpires = htmltext.Clean(th.Next().Text())
			return false
		}
		return true
	})
	return umpires
}

// matchRow is one discipline slot as printed in the results table.
type matchRow struct {
	name  string
	sides [2][]match.ParticipantName
	score [][2]int
}

// extractMatchRows locates the outer results table and yields one row per
// discipline slot. A missing table is fatal; a table with no valid rows
// yields an empty slice (some pages legitimately list no matches yet).
func extractMatchRows(doc *goquery.Document) ([]matchRow, error) {
	table := doc.Find("table.ruler.matches").First()
	if table.Length() == 0 {
		return nil, ErrNoMatchTable
	}

	rows := make([]matchRow, 0)
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		// Direct children only: the line-up cells nest their own tables.
		tds := tr.ChildrenFiltered("td")
		if tds.Length() < 5 {
			return
		}

		name := htmltext.Clean(tds.Eq(0).Text())
		if !matchNamePattern.MatchString(name) {
			return
		}
		// The cell between the two line-up cells holds the "-" divider;
		// rows without it are headers or filler.
		if htmltext.Clean(tds.Eq(2).Text()) != "-" {
			return
		}

		rows = append(rows, matchRow{
			name: name,
			sides: [2][]match.ParticipantName{
				extractRowPlayers(tds.Eq(1)),
				extractRowPlayers(tds.Eq(3)),
			},
			score: extractScore(tds.Eq(4)),
		})
	})
	return rows, nil
}

// extractRowPlayers pulls the printed player names out of one line-up cell.
// The cell usually wraps them in an inner table of player.aspx anchors; a
// cell without anchors is an empty (not yet filled) slot.
func extractRowPlayers(cell *goquery.Selection) []match.ParticipantName {
	players := make([]match.ParticipantName, 0)
	cell.Find(`a[href*="player.aspx"]`).Each(func(i int, a *goquery.Selection) {
		players = append(players, match.ParticipantName{Name: htmltext.Clean(a.Text())})
	})
	return players
}

// extractScore parses a score cell into ordered game-score pairs. A cell
// without a recognizable span.score block yields nil, which is the normal
// state of a not-yet-played match, not an error. A block that is present
// but holds no parseable games yields an empty, non-nil list.
func extractScore(cell *goquery.Selection) [][2]int {
	span := cell.Find("span.score").First()
	if span.Length() == 0 {
		return nil
	}

	score := make([][2]int, 0)
	span.ChildrenFiltered("span").Each(func(i int, game *goquery.Selection) {
		m := scorePattern.FindStringSubmatch(strings.TrimSpace(game.Text()))
		if m == nil {
			return
		}
		left, _ := strconv.Atoi(m[1])
		right, _ := strconv.Atoi(m[2])
		score = append(score, [2]int{left, right})
	})
	return score
}
