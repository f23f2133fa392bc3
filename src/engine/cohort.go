package engine

import (
	"rtm/src/models"
	"rtm/src/types"
)

// WaitMinutesPerParty is the flat per-party estimate used for cohort wait
// times. Deliberately simple; replacing it with a real queueing model is a
// product decision, not an implementation detail.
const WaitMinutesPerParty = 15

// CohortBand is a party-size range. Max 0 marks a band open-ended above
// its Min.
type CohortBand struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max,omitempty"`
}

// Contains reports whether the party size falls in the band.
func (b CohortBand) Contains(partySize int) bool {
	if partySize < b.Min {
		return false
	}
	return b.Max == 0 || partySize <= b.Max
}

// CohortBands are the fixed party-size bands. Every waiting entry belongs
// to exactly one band; the last band has no upper bound.
var CohortBands = []CohortBand{
	{Name: "1-2 Groups", Min: 0, Max: 2},
	{Name: "2-4 Groups", Min: 3, Max: 4},
	{Name: "4-6 Groups", Min: 5, Max: 6},
	{Name: ">6 Groups", Min: 7},
}

type Cohort struct {
	Band     CohortBand             `json:"band"`
	Entries  []models.WaitlistEntry `json:"entries"`
	WaitTime int                    `json:"waitTime"`
}

// GroupByCohort partitions the waiting entries into capacity bands,
// preserving arrival order within each band. Seated and cancelled entries
// are dropped.
func GroupByCohort(entries []models.WaitlistEntry) []Cohort {
	cohorts := make([]Cohort, len(CohortBands))
	for i, band := range CohortBands {
		cohorts[i] = Cohort{Band: band, Entries: []models.WaitlistEntry{}}
	}
	for _, entry := range entries {
		if entry.Status != types.WAITLIST_WAITING {
			continue
		}
		for i, band := range CohortBands {
			if band.Contains(entry.PartySize) {
				cohorts[i].Entries = append(cohorts[i].Entries, entry)
				break
			}
		}
	}
	for i := range cohorts {
		cohorts[i].WaitTime = EstimateWaitTime(cohorts[i])
	}
	return cohorts
}

// EstimateWaitTime returns the cohort's estimated wait in minutes.
func EstimateWaitTime(c Cohort) int {
	return len(c.Entries) * WaitMinutesPerParty
}

// FindBestTable returns the first available table, in source order, whose
// capacity range covers the party size, or nil when none fits. Callers
// must not assume any tie-break beyond list order.
func FindBestTable(partySize int, tables []models.Table) *models.Table {
	for i := range tables {
		if tables[i].Status == types.TABLE_AVAILABLE && tables[i].Fits(partySize) {
			return &tables[i]
		}
	}
	return nil
}

// AvailableTablesForParty lists every available table that fits the party.
func AvailableTablesForParty(partySize int, tables []models.Table) []models.Table {
	matches := []models.Table{}
	for _, table := range tables {
		if table.Status == types.TABLE_AVAILABLE && table.Fits(partySize) {
			matches = append(matches, table)
		}
	}
	return matches
}
