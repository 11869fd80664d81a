package scoring

import "github.com/vijay-prabhu/disha/internal/catalog"

// gapChecks are evaluated in this order and the output keeps it
var gapChecks = []struct {
	attr  catalog.Attribute
	label string
}{
	{catalog.AttrStrength, "Strength Training"},
	{catalog.AttrEndurance, "Cardio/Stamina"},
	{catalog.AttrFlexibility, "Flexibility/Yoga"},
	{catalog.AttrTactical, "Strategic Study"},
	{catalog.AttrCoordination, "Drills/Technique"},
}

// AnalyzeGaps lists the attributes where the profile's ideal exceeds the
// user's value by more than threshold, at most max entries.
func AnalyzeGaps(v UserVector, p catalog.ProfileEntry, threshold float64, max int) []string {
	areas := []string{}
	for _, g := range gapChecks {
		if len(areas) >= max {
			break
		}
		if p.Ideal(g.attr)-v.Get(g.attr) > threshold {
			areas = append(areas, g.label)
		}
	}
	return areas
}
