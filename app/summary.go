package app

import (
	"time"

	"github.com/montanaflynn/stats"

	"caseflow/domain/record"
	"caseflow/domain/schema"
)

const hoursPerYear = 24 * 365.25

// buildSummary profiles a finished run: row outcome counts, how well
// each mapped column was populated, and the age distribution of the
// parsed records. It is descriptive only and never affects success.
func buildSummary(dataRows [][]string, headers schema.HeaderMap, states []*rowState, now time.Time) *record.BatchSummary {
	summary := &record.BatchSummary{
		RowsTotal:      len(states),
		FieldFillRates: make(map[schema.Field]float64, len(headers)),
	}

	var ages []float64
	for _, st := range states {
		switch st.outcome.Kind {
		case record.OutcomeParsed:
			summary.RowsParsed++
			if dob, err := st.outcome.Record.DOB.Time(); err == nil {
				ages = append(ages, now.Sub(dob).Hours()/hoursPerYear)
			}
		case record.OutcomeSkipped:
			summary.RowsSkipped++
		case record.OutcomeErrored:
			summary.RowsErrored++
		}
	}

	if len(dataRows) > 0 {
		for field := range headers {
			filled := 0
			for _, row := range dataRows {
				if record.Cell(row, headers, field) != "" {
					filled++
				}
			}
			summary.FieldFillRates[field] = float64(filled) / float64(len(dataRows))
		}
	}

	if len(ages) > 0 {
		// These only fail on empty input, which is excluded above.
		summary.AgeMean, _ = stats.Mean(ages)
		summary.AgeMedian, _ = stats.Median(ages)
		summary.AgeQ1, _ = stats.Percentile(ages, 25)
		summary.AgeQ3, _ = stats.Percentile(ages, 75)
	}

	return summary
}
