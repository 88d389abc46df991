package domain

// Settings holds the configurable game parameters for a room
type Settings struct {
	Words      int `json:"words"`      // grid size for each round
	Timer      int `json:"timer"`      // round length in seconds
	Rounds     int `json:"rounds"`     // rounds per game
	BonusWords int `json:"bonusWords"` // bonus tiles per grid
	Level      int `json:"level"`      // difficulty level 1-9, drives the word pool
}

// Preset is a named difficulty/size configuration selectable by the host
type Preset struct {
	Level      int    `json:"level"`
	Difficulty string `json:"difficulty"`
	Words      int    `json:"words"`
	Seconds    int    `json:"seconds"`
	Rounds     int    `json:"rounds"`
	BonusWords int    `json:"bonusWords"`
}

// Presets are the nine standard configurations: three difficulty tiers,
// each in three size/time variants.
var Presets = map[int]Preset{
	1: {Level: 1, Difficulty: "Easy", Words: 24, Seconds: 120, Rounds: 5, BonusWords: 5},
	2: {Level: 2, Difficulty: "Easy", Words: 22, Seconds: 110, Rounds: 5, BonusWords: 4},
	3: {Level: 3, Difficulty: "Easy", Words: 20, Seconds: 100, Rounds: 5, BonusWords: 3},
	4: {Level: 4, Difficulty: "Medium", Words: 22, Seconds: 110, Rounds: 5, BonusWords: 4},
	5: {Level: 5, Difficulty: "Medium", Words: 20, Seconds: 100, Rounds: 5, BonusWords: 3},
	6: {Level: 6, Difficulty: "Medium", Words: 18, Seconds: 90, Rounds: 5, BonusWords: 2},
	7: {Level: 7, Difficulty: "Difficult", Words: 18, Seconds: 100, Rounds: 5, BonusWords: 3},
	8: {Level: 8, Difficulty: "Difficult", Words: 16, Seconds: 90, Rounds: 5, BonusWords: 2},
	9: {Level: 9, Difficulty: "Difficult", Words: 14, Seconds: 80, Rounds: 5, BonusWords: 1},
}

// GetPreset returns the preset for the given level, defaulting to level 3
func GetPreset(level int) Preset {
	if p, ok := Presets[level]; ok {
		return p
	}
	return Presets[3]
}

// Settings converts a preset into room settings
func (p Preset) Settings() Settings {
	return Settings{
		Words:      p.Words,
		Timer:      p.Seconds,
		Rounds:     p.Rounds,
		BonusWords: p.BonusWords,
		Level:      p.Level,
	}
}

// DefaultSettings returns the default room settings (level 3 preset)
func DefaultSettings() Settings {
	return GetPreset(3).Settings()
}
