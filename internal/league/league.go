package league

import (
	"errors"
	"fmt"
)

// ErrUnknownLeague is reported when a competition/division combination has
// no entry in the key table. This is a deliberate hard gate: an unknown
// competition must never be imported with a guessed classification.
var ErrUnknownLeague = errors.New("unknown league")

// Separator joins the competition header and the division label into the
// long lookup key.
const Separator = ":"

// leagueKeys maps the long free-text key printed on the site to the stable
// short league code. Version-controlled configuration data; read-only after
// init, so concurrent lookups are safe.
var leagueKeys = map[string]string{
	"Bundesligen 2016/17:1. Bundesliga 1. Bundesliga":                                 "1BL-2016",
	"Bundesligen 2016/17:1. Bundesliga 1. Bundesliga - Final Four":                    "1BL-2016",
	"Bundesligen 2016/17:1. Bundesliga 1. Bundesliga - PlayOff - Viertelfinale 1":     "1BL-2016",
	"Bundesligen 2016/17:1. Bundesliga 1. Bundesliga - PlayOff - Viertelfinale 2":     "1BL-2016",
	"TEST - Ligen - Hagemeister Mai 2017:Test LIGA - Testliga":                        "1BL-2016",
	"BundesLiga 2016-2017:Bundesliga - 1. Bundesliga":                                 "OBL-2017",
	"Ligen NRW 2017-18:O19-NRW O19-RL - (001) Regionalliga West":                      "RLW-2016",
	"Ligen DBV 2017/18 (ohne Bundesligen):Gruppe Nord (NO) - (001) Regionalliga Nord": "RLN-2016",
	"Bundesligen 2017/18:1. Bundesliga (1. BL) - (001) 1. Bundesliga":                 "1BL-2017",
	"Bundesligen 2017/18:2. Bundesliga (2. BL-Nord) - (002) 2. Bundesliga Nord":       "2BLN-2017",
	"Bundesligen 2017/18:2. Bundesliga (2. BL-Süd) - (003) 2. Bundesliga Süd":         "2BLS-2017",
	"BundesLiga 2017-2018:Bundesliga - 1. Bundesliga":                                 "OBL-2017",
}

// Key builds the long lookup key from the competition header and the
// division label as printed on the match page.
func Key(header, division string) string {
	return header + Separator + division
}

// Resolve maps a long key to its short league code. Unknown keys fail with
// ErrUnknownLeague (wrapped with the offending key).
func Resolve(longKey string) (string, error) {
	code, ok := leagueKeys[longKey]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLeague, longKey)
	}
	return code, nil
}
