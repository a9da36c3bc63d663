package core

// Cluster is one physical group of collection bins served from a single
// representative service position. FillPct is injected by the caller
// before route building and stays fixed for the run.
type Cluster struct {
	Name    string
	Zone    Zone
	Bins    []Pos
	Service Pos
	FillPct float64 // 0..100
}

// IsDue reports whether the cluster needs a full service stop at the
// given threshold fraction (0..1). The predicate is recomputed from the
// current fill percentage on every call; due status is never cached.
func (c *Cluster) IsDue(threshold float64) bool {
	return c.FillPct >= threshold*100
}

// FillBand classifies a cluster's fill level for reporting.
type FillBand int

const (
	FillOK   FillBand = iota // Comfortably below threshold
	FillWarn                 // Within 80% of threshold
	FillFull                 // At or past threshold (due)
)

func (b FillBand) String() string {
	return [...]string{"ok", "warn", "full"}[b]
}

// Band returns the fill band at the given threshold fraction.
func (c *Cluster) Band(threshold float64) FillBand {
	pct := threshold * 100
	switch {
	case c.FillPct >= pct:
		return FillFull
	case c.FillPct >= pct*0.8:
		return FillWarn
	default:
		return FillOK
	}
}
