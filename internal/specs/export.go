package specs

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
)

// RankingRecord is one CSV row of an exported ranking.
type RankingRecord struct {
	Rank  int     `csv:"rank"`
	Name  string  `csv:"alternative"`
	Total float64 `csv:"total_score"`
}

// WriteRanking writes ranked alternatives as rank,alternative,total_score CSV.
func WriteRanking(w io.Writer, ranked []ahp.RankedAlternative) error {
	records := make([]*RankingRecord, len(ranked))
	for i, r := range ranked {
		records[i] = &RankingRecord{Rank: r.Rank, Name: r.Name, Total: r.Total}
	}
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("write ranking: %w", err)
	}
	return nil
}
