package match

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchIDPrefix tags every synthetic match identifier so downstream stores
// can tell imported matches from locally created ones.
const MatchIDPrefix = "tde"

// doublesCodes are the discipline codes that mark a match name as doubles.
// Checked in this fixed order; the first hit decides. A name containing
// several codes (not seen in the wild so far) is still just "doubles" since
// the result is a single boolean.
var doublesCodes = []string{"DD", "GD", "HD", "WD", "MX", "MD", "BD", "JD"}

// eventsheetPattern matches strict discipline codes: letters followed by a
// single ordinal digit 1-5, e.g. "HD1" or "MX2".
var eventsheetPattern = regexp.MustCompile(`^([A-Z]+)([1-5])$`)

// TeamInfo identifies one side of a team match on the source site. Season
// and ID are the query parameters needed to fetch the team's roster page.
type TeamInfo struct {
	Season string `json:"season"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}

// Player is one entry of a team's season roster.
type Player struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Name        string `json:"name"`
	TextID      string `json:"textid"`
	Gender      string `json:"gender"`
	Ranking     int    `json:"ranking,omitempty"`
	RankingD    int    `json:"ranking_d,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// ParticipantName is a player name as printed in a discipline slot. These
// are deliberately not resolved against the fetched roster; the page keeps
// them as separate data and so do we.
type ParticipantName struct {
	Name string `json:"name"`
}

// ParticipantSet is one side's printed line-up for a single sub-match.
type ParticipantSet struct {
	Players []ParticipantName `json:"players"`
}

// Setup describes one discipline slot of a team match.
type Setup struct {
	MatchName    string            `json:"match_name"`
	MatchID      string            `json:"match_id"`
	IsDoubles    bool              `json:"is_doubles"`
	Teams        [2]ParticipantSet `json:"teams"`
	Incomplete   bool              `json:"incomplete"`
	EventsheetID string            `json:"eventsheet_id,omitempty"`
}

// SubMatch is a discipline slot plus its recorded score, if any.
// NetworkScore is omitted entirely while the slot is unplayed (nil); a
// score block without parseable games serializes as an empty list.
type SubMatch struct {
	Setup        Setup    `json:"setup"`
	NetworkScore [][2]int `json:"network_score,omitzero"`
}

// Record is the normalized team match document.
type Record struct {
	TeamNames       [2]string   `json:"team_names"`
	AllPlayers      [2][]Player `json:"all_players"`
	LeagueKey       string      `json:"league_key"`
	TeamCompetition bool        `json:"team_competition"`
	Date            string      `json:"date"`
	Starttime       string      `json:"starttime"`
	Location        string      `json:"location,omitempty"`
	Umpires         string      `json:"umpires,omitempty"`
	Matches         []SubMatch  `json:"matches"`
}

// IsDoubles reports whether a match name denotes a doubles discipline.
func IsDoubles(matchName string) bool {
	for _, code := range doublesCodes {
		if strings.Contains(matchName, code) {
			return true
		}
	}
	return false
}

// ExpectedPlayers returns how many names each side should print for the
// given match name: 2 for doubles, 1 for singles.
func ExpectedPlayers(matchName string) int {
	if IsDoubles(matchName) {
		return 2
	}
	return 1
}

// EventsheetID derives the eventsheet code ("1.HD") from a strict
// discipline match name ("HD1"). Names that don't follow the
// code-plus-ordinal pattern yield "".
func EventsheetID(matchName string) string {
	m := eventsheetPattern.FindStringSubmatch(matchName)
	if m == nil {
		return ""
	}
	return m[2] + "." + m[1]
}

// MatchID builds the synthetic identifier for one sub-match. It is derived
// purely from stable page content, so re-importing an unchanged page yields
// byte-identical IDs and downstream storage keyed on them stays idempotent.
func MatchID(teamNames [2]string, date, matchName string) string {
	return fmt.Sprintf("%s:%s-%s_%s_%s", MatchIDPrefix, teamNames[0], teamNames[1], date, matchName)
}

// FullName joins first and last name the way the roster page prints them
// elsewhere on the site (first name first).
func FullName(firstname, lastname string) string {
	return firstname + " " + lastname
}
