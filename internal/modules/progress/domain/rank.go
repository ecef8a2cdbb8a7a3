package domain

type Tier struct {
	Min   int
	Title string
}

// Tiers is ordered by Min; the first tier starts at zero.
var Tiers = []Tier{
	{0, "Novice"},
	{2, "Apprentice"},
	{4, "Dedicated Student"},
	{6, "Scholar"},
	{8, "Master of Knowledge"},
}

func ResolveRank(unlocked int) string {
	title := Tiers[0].Title
	for _, t := range Tiers {
		if unlocked >= t.Min {
			title = t.Title
		}
	}
	return title
}

// NextRank reports the tier after the one unlocked falls in and the unlocked
// count it needs. ok is false at the top tier.
func NextRank(unlocked int) (title string, needed int, ok bool) {
	for _, t := range Tiers {
		if unlocked < t.Min {
			return t.Title, t.Min, true
		}
	}
	return "", 0, false
}
