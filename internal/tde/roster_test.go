package tde

import (
	"testing"

	"github.com/bkraemer/tde-import/internal/match"
)

func TestRosterURL(t *testing.T) {
	team := match.TeamInfo{Season: "B1E0C57F-82A3-43A5-AD16-2AD4AF6EBD37", ID: "22", Name: "TV Refrath"}

	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{
			name:     "default variant",
			host:     "www.turnier.de",
			expected: "https://www.turnier.de/sport/teamrankingplayers.aspx?id=B1E0C57F-82A3-43A5-AD16-2AD4AF6EBD37&tid=22",
		},
		{
			name:     "austrian variant",
			host:     "obv.tournamentsoftware.com",
			expected: "https://obv.tournamentsoftware.com/sport/teamplayers.aspx?id=B1E0C57F-82A3-43A5-AD16-2AD4AF6EBD37&tid=22",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rosterURL(tt.host, VariantForHost(tt.host), team)
			if got != tt.expected {
				t.Errorf("rosterURL = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestParseRoster(t *testing.T) {
	doc := loadFixture(t, "roster.html")

	players := parseRoster(doc, VariantForHost("www.turnier.de"))
	if len(players) != 4 {
		t.Fatalf("expected 4 players, got %d", len(players))
	}

	first := players[0]
	if first.Lastname != "Lamsfuß" || first.Firstname != "Mark" {
		t.Errorf("first player = %q, %q", first.Lastname, first.Firstname)
	}
	if first.Name != "Mark Lamsfuß" {
		t.Errorf("full name = %q, expected %q", first.Name, "Mark Lamsfuß")
	}
	if first.Gender != "m" {
		t.Errorf("gender = %q, expected m", first.Gender)
	}
	if first.Ranking != 2 {
		t.Errorf("ranking = %d, expected 2", first.Ranking)
	}
	if first.Nationality != "GER" {
		t.Errorf("nationality = %q, expected GER", first.Nationality)
	}
	if first.TextID != "01-046886" {
		t.Errorf("textid = %q, expected 01-046886", first.TextID)
	}

	second := players[1]
	if second.Ranking != 5 {
		t.Errorf("second ranking = %d, expected 5", second.Ranking)
	}
	if second.RankingD != 3 {
		t.Errorf("second doubles ranking = %d, expected 3", second.RankingD)
	}

	third := players[2]
	if third.Ranking != 0 || third.RankingD != 0 {
		t.Errorf("third player should have no rankings, got %d/%d", third.Ranking, third.RankingD)
	}
	if third.Nationality != "" {
		t.Errorf("third player should have no nationality, got %q", third.Nationality)
	}

	female := players[3]
	if female.Gender != "f" {
		t.Errorf("fourth player gender = %q, expected f", female.Gender)
	}
	if female.Name != "Yvonne Li" {
		t.Errorf("fourth player = %q, expected Yvonne Li", female.Name)
	}
}

func TestParseRosterMissingFemaleTable(t *testing.T) {
	doc := loadFixture(t, "roster_missing_female.html")

	if players := parseRoster(doc, VariantForHost("www.turnier.de")); players != nil {
		t.Errorf("expected nil roster when female sub-table is missing, got %d players", len(players))
	}
}

func TestParseRosterNoTables(t *testing.T) {
	doc := docFromString(t, "<html><body><p>Seite nicht gefunden</p></body></html>")

	if players := parseRoster(doc, VariantForHost("www.turnier.de")); players != nil {
		t.Errorf("expected nil roster for an unrelated page, got %d players", len(players))
	}
}

func TestParseRosterAlternateCaption(t *testing.T) {
	doc := docFromString(t, `<html><body>
<table class="ruler"><caption>Männer</caption>
<tr><td>1-1</td><td></td><td id="playercell"><a href="player.aspx?id=1">Huber, Franz</a></td><td class="flagcell"></td><td>03-111</td><td>1991</td></tr>
</table>
<table class="ruler"><caption>Frauen</caption>
<tr><td>1-1</td><td></td><td id="playercell"><a href="player.aspx?id=2">Maier, Anna</a></td><td class="flagcell"></td><td>03-222</td><td>1993</td></tr>
</table>
</body></html>`)

	players := parseRoster(doc, VariantForHost("obv.tournamentsoftware.com"))
	if len(players) != 2 {
		t.Fatalf("expected 2 players with alternate caption spellings, got %d", len(players))
	}
	if players[0].Gender != "m" || players[1].Gender != "f" {
		t.Errorf("unexpected genders: %q, %q", players[0].Gender, players[1].Gender)
	}
}

func TestSplitPlayerName(t *testing.T) {
	tests := []struct {
		input     string
		lastname  string
		firstname string
		ok        bool
	}{
		{"Zwiebler, Marc", "Zwiebler", "Marc", true},
		{"van der Berg,  Jan", "van der Berg", "Jan", true},
		{"NoComma", "", "", false},
		{", ", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lastname, firstname, ok := splitPlayerName(tt.input)
			if ok != tt.ok {
				t.Fatalf("splitPlayerName(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			}
			if lastname != tt.lastname || firstname != tt.firstname {
				t.Errorf("splitPlayerName(%q) = (%q, %q)", tt.input, lastname, firstname)
			}
		})
	}
}
