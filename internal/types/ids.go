package types

// ID type aliases give each identifier a domain meaning so they cannot be
// mixed up at call sites.

// VacancyID identifies a vacancy, the context a board is drawn for
type VacancyID int

// ItemID identifies a candidate placed on a vacancy board
type ItemID int

// StageID identifies a stage within a single board. It is opaque and only
// compared for equality.
type StageID string

// ActivityID identifies an entry in the activity feed
type ActivityID int

// ToInt converts type alias back to int for the database layer
func (id VacancyID) ToInt() int {
	return int(id)
}

func (id ItemID) ToInt() int {
	return int(id)
}

func (id ActivityID) ToInt() int {
	return int(id)
}

// String returns the raw stage identifier
func (id StageID) String() string {
	return string(id)
}
