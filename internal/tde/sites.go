package tde

// Variant captures the behavioral differences between the known source-site
// families: the name of the secondary roster page and the caption spellings
// of the gendered roster sub-tables. Everything else about the two page
// layouts is close enough to share one set of extractors.
type Variant struct {
	// RosterPage is the aspx page name serving a team's season roster.
	RosterPage string
	// MaleLabels and FemaleLabels are the accepted caption spellings of
	// the gendered roster sub-tables.
	MaleLabels   []string
	FemaleLabels []string
}

var (
	// variantDefault covers www.turnier.de and most
	// *.tournamentsoftware.com instances.
	variantDefault = Variant{
		RosterPage:   "teamrankingplayers",
		MaleLabels:   []string{"Herren", "Männer"},
		FemaleLabels: []string{"Damen", "Frauen"},
	}

	// variantOBV covers the Austrian federation instance, which serves
	// rosters from a differently named page.
	variantOBV = Variant{
		RosterPage:   "teamplayers",
		MaleLabels:   []string{"Herren", "Männer"},
		FemaleLabels: []string{"Damen", "Frauen"},
	}
)

// VariantForHost selects the site variant for an accepted host.
func VariantForHost(host string) Variant {
	if host == "obv.tournamentsoftware.com" {
		return variantOBV
	}
	return variantDefault
}
