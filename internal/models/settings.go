package models

// Settings represents application-wide settings
type Settings struct {
	// IANA timezone name (e.g. "America/New_York") or "Local" for the system timezone
	Timezone string `json:"timezone" validate:"required,tz"`
	// Number of upcoming days shown after the anchor day
	PreviewDays int `json:"preview_days" validate:"min=1,max=13"`
	// Adjacency rules switched off by name
	DisabledRules []string `json:"disabled_rules,omitempty" validate:"dive,required,rule"`
}
