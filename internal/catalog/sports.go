package catalog

func sport(name string, envs []Environment, height, bmi, strength, speed, endurance, reflex, coordination, flexibility, tactical, team, aggression float64) ProfileEntry {
	return ProfileEntry{
		Name: name,
		Ideals: map[Attribute]float64{
			AttrHeight:       height,
			AttrBMI:          bmi,
			AttrStrength:     strength,
			AttrSpeed:        speed,
			AttrEndurance:    endurance,
			AttrReflex:       reflex,
			AttrCoordination: coordination,
			AttrFlexibility:  flexibility,
			AttrTactical:     tactical,
			AttrTeam:         team,
			AttrAggression:   aggression,
		},
		Environments: envs,
	}
}

var (
	indoor        = []Environment{EnvIndoor}
	outdoor       = []Environment{EnvOutdoor}
	water         = []Environment{EnvWater}
	indoorOutdoor = []Environment{EnvIndoor, EnvOutdoor}
	outdoorIndoor = []Environment{EnvOutdoor, EnvIndoor}
)

// sportsProfiles columns: height, bmi, strength, speed, endurance, reflex,
// coordination, flexibility, tactical, team, aggression
var sportsProfiles = []ProfileEntry{
	sport("Basketball", indoorOutdoor, 0.9, 0.5, 0.6, 0.7, 0.7, 0.7, 0.8, 0.6, 0.6, 1.0, 0.5),
	sport("Football (Soccer)", outdoor, 0.5, 0.4, 0.6, 0.8, 0.9, 0.6, 0.9, 0.7, 0.8, 1.0, 0.6),
	sport("Cricket (Fast Bowling)", outdoor, 0.8, 0.5, 0.8, 0.8, 0.7, 0.6, 0.7, 0.6, 0.7, 1.0, 0.8),
	sport("Badminton", indoor, 0.5, 0.3, 0.5, 0.9, 0.7, 1.0, 0.9, 0.8, 0.7, 0.0, 0.4),
	sport("Weightlifting", indoor, 0.3, 0.9, 1.0, 0.6, 0.3, 0.4, 0.6, 0.7, 0.3, 0.0, 0.7),
	sport("Swimming", water, 0.8, 0.5, 0.7, 0.7, 0.9, 0.5, 0.8, 0.9, 0.4, 0.0, 0.3),
	sport("Chess", indoor, 0.5, 0.5, 0.1, 0.1, 0.6, 0.2, 0.2, 0.1, 1.0, 0.0, 0.4),
	sport("Table Tennis", indoor, 0.4, 0.4, 0.4, 0.8, 0.6, 1.0, 1.0, 0.6, 0.7, 0.0, 0.5),
	sport("Kabaddi", indoorOutdoor, 0.6, 0.7, 0.9, 0.7, 0.8, 0.8, 0.7, 0.7, 0.8, 1.0, 0.9),
	sport("Athletics (Sprinting)", outdoor, 0.7, 0.4, 0.8, 1.0, 0.5, 0.8, 0.7, 0.7, 0.3, 0.0, 0.7),
	sport("Wrestling", indoor, 0.5, 0.8, 1.0, 0.6, 0.8, 0.7, 0.7, 0.8, 0.7, 0.0, 0.9),
	sport("Archery/Shooting", outdoorIndoor, 0.5, 0.5, 0.4, 0.1, 0.5, 0.3, 1.0, 0.2, 0.6, 0.0, 0.1),
}

// Sports returns the compiled-in sports catalog
func Sports() *Catalog {
	return MustNew(sportsProfiles...)
}
