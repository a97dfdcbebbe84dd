package tde

import "errors"

// Fatal import conditions. Each is distinct so callers can tell bad input
// (ErrUnsupportedURL) from site layout drift (the missing-fragment errors)
// from an unlisted competition (league.ErrUnknownLeague) from a network
// problem (ErrFetchFailed). None of them ever comes with a partial record.
var (
	ErrUnsupportedURL = errors.New("unsupported URL")
	ErrFetchFailed    = errors.New("fetch failed")
	ErrNoTeamNames    = errors.New("team names not found")
	ErrNoHeader       = errors.New("competition header not found")
	ErrNoDivision     = errors.New("division not found")
	ErrNoSchedule     = errors.New("schedule not found")
	ErrNoMatchTable   = errors.New("match table not found")
)
