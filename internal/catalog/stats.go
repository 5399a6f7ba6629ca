package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// Stats is the admin dashboard's aggregate row.
type Stats struct {
	TotalCount     int             `json:"totalCount"`
	TotalDownloads int64           `json:"totalDownloads"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

// ComputeStats aggregates over the given set. Downloads count paid and free
// alike; revenue sums price×sales over paid stories only, with unparsable
// prices contributing zero. Revenue is rounded to 2 decimal places.
func ComputeStats(stories []models.Story) Stats {
	st := Stats{TotalCount: len(stories), TotalRevenue: decimal.Zero}
	for _, s := range stories {
		st.TotalDownloads += s.Sales
		if !s.IsPaid {
			continue
		}
		st.TotalRevenue = st.TotalRevenue.Add(
			s.PriceAmount().Mul(decimal.NewFromInt(s.Sales)),
		)
	}
	st.TotalRevenue = st.TotalRevenue.Round(2)
	return st
}

// Stats aggregates over the current snapshot.
func (c *Catalog) Stats() Stats {
	return ComputeStats(c.ListAll())
}
