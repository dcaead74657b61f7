package model

// Settings is the user-tunable configuration persisted alongside
// tasks. Omitted fields are backfilled from DefaultSettings on load.
type Settings struct {
	GoogleSyncEnabled   bool   `json:"googleSyncEnabled"`
	AIEnabled           bool   `json:"aiEnabled"`
	DefaultDuration     int    `json:"defaultDuration"` // minutes
	ProductiveHours     int    `json:"productiveHours"`
	WorkStartTime       string `json:"workStartTime"` // "HH:MM"
	TranslationEnabled  bool   `json:"translationEnabled"`
	TranslationLanguage string `json:"translationLanguage"`
}

// DefaultSettings returns the settings seeded on first run.
func DefaultSettings() Settings {
	return Settings{
		GoogleSyncEnabled:   true,
		AIEnabled:           true,
		DefaultDuration:     30,
		ProductiveHours:     8,
		WorkStartTime:       "09:00",
		TranslationEnabled:  false,
		TranslationLanguage: "en",
	}
}
