package tankworld

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

// AlgorithmReportRow is one CSV/text-report row summarizing a single
// algorithm's population-wide performance, per spec.md §7's evolutionary
// success reports.
type AlgorithmReportRow struct {
	Algorithm      string  `csv:"algorithm"`
	LivingCount    int     `csv:"living_count"`
	EverBorn       int     `csv:"ever_born"`
	TotalOffspring int     `csv:"total_offspring"`
	AvgLifespan    float64 `csv:"avg_lifespan"`
	SurvivalRate   float64 `csv:"survival_rate"`
}

// AlgorithmReport ranks every algorithm ever observed by living count,
// descending, breaking ties by AlgorithmID for determinism.
func (t *Tracker) AlgorithmReport() []AlgorithmReportRow {
	rows := make([]AlgorithmReportRow, 0, len(t.Algo))
	for id, s := range t.Algo {
		avgLifespan := 0.0
		if s.TotalDeaths > 0 {
			avgLifespan = float64(s.TotalLifespan) / float64(s.TotalDeaths)
		}
		survival := 0.0
		if s.EverBornCount > 0 {
			survival = float64(s.LivingCount) / float64(s.EverBornCount)
		}
		rows = append(rows, AlgorithmReportRow{
			Algorithm:      fmt.Sprintf("algorithm_%02d", int(id)),
			LivingCount:    s.LivingCount,
			EverBorn:       s.EverBornCount,
			TotalOffspring: s.TotalOffspring,
			AvgLifespan:    avgLifespan,
			SurvivalRate:   survival,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LivingCount != rows[j].LivingCount {
			return rows[i].LivingCount > rows[j].LivingCount
		}
		return rows[i].Algorithm < rows[j].Algorithm
	})
	return rows
}

// TopK returns the first k rows of AlgorithmReport (or fewer, if there
// aren't k algorithms on record).
func (t *Tracker) TopK(k int) []AlgorithmReportRow {
	rows := t.AlgorithmReport()
	if k < len(rows) {
		rows = rows[:k]
	}
	return rows
}

// ExportAlgorithmCSV renders the algorithm report as CSV text.
func (t *Tracker) ExportAlgorithmCSV() (string, error) {
	rows := t.AlgorithmReport()
	return gocsv.MarshalString(&rows)
}

// DiversityIndex computes the Shannon entropy (in nats) of the living
// population's algorithm-id distribution, per spec.md §7: zero when every
// living fish shares one algorithm, rising toward ln(N) as the population
// spreads evenly across N distinct algorithms.
func (t *Tracker) DiversityIndex() float64 {
	total := 0
	for _, s := range t.Algo {
		total += s.LivingCount
	}
	if total == 0 {
		return 0
	}
	proportions := make([]float64, 0, len(t.Algo))
	for _, s := range t.Algo {
		if s.LivingCount == 0 {
			continue
		}
		proportions = append(proportions, float64(s.LivingCount)/float64(total))
	}
	return stat.Entropy(proportions)
}

// TraitFitnessCorrelation returns the Pearson correlation coefficient
// between a per-fish trait value and its fitness proxy (offspring count),
// across every fish with recorded lineage data. Returns 0 if fewer than
// two samples are available.
func TraitFitnessCorrelation(traitValues, offspringCounts []float64) float64 {
	if len(traitValues) < 2 || len(traitValues) != len(offspringCounts) {
		return 0
	}
	return stat.Correlation(traitValues, offspringCounts, nil)
}

// SurvivalRate is the population-wide fraction of all fish ever born that
// are still alive.
func (t *Tracker) SurvivalRate() float64 {
	living, born := 0, 0
	for _, s := range t.Algo {
		living += s.LivingCount
		born += s.EverBornCount
	}
	if born == 0 {
		return 0
	}
	return float64(living) / float64(born)
}

// TextSummary renders a human-readable status report with
// thousands-grouped numbers, in the teacher's periodic-digest style.
func (t *Tracker) TextSummary(s *SimState) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString(p.Sprintf("frame %d — population %d, diversity %.3f, survival %.1f%%\n",
		s.Frame, len(s.Fish), t.DiversityIndex(), t.SurvivalRate()*100))
	b.WriteString(p.Sprintf("deaths: starvation=%d old_age=%d predation=%d poker_loss=%d (total %d)\n",
		t.Deaths.Starvation, t.Deaths.OldAge, t.Deaths.Predation, t.Deaths.PokerLoss, t.Deaths.Total()))
	b.WriteString(p.Sprintf("energy ledger: inflow=%.1f outflow=%.1f balance=%.1f\n",
		t.Ledger.Inflow, t.Ledger.Outflow, t.Ledger.Balance()))

	for _, row := range t.TopK(5) {
		b.WriteString(p.Sprintf("  %-24s living=%-5d ever_born=%-5d avg_lifespan=%.1f survival=%.1f%%\n",
			row.Algorithm, row.LivingCount, row.EverBorn, row.AvgLifespan, row.SurvivalRate*100))
	}
	return b.String()
}
