package sets

import "showdown-ssb/data"

const (
	DefaultEV = 0
	DefaultIV = 31
)

// NormalizeEVs fills every stat the partial table leaves out with DefaultEV.
func NormalizeEVs(p PartialStats) data.StatsTable {
	return p.fill(DefaultEV)
}

// NormalizeIVs fills every stat the partial table leaves out with DefaultIV.
// A stat set explicitly to 0 stays 0.
func NormalizeIVs(p PartialStats) data.StatsTable {
	return p.fill(DefaultIV)
}

func (p PartialStats) fill(def int) data.StatsTable {
	table := data.Uniform(def)
	for _, stat := range data.Stats {
		if v, ok := p[stat]; ok {
			table.Set(stat, v)
		}
	}
	return table
}
