package core

import "testing"

func TestCluster_IsDue(t *testing.T) {
	tests := []struct {
		name string
		fill float64
		want bool
	}{
		{"top_left_row", 83, true},
		{"top_right_col", 55, false},
		{"bottom_left_col", 92, true},
		{"bottom_mid_row", 48, false},
		{"bottom_right_col", 88, true},
		{"exactly at threshold", 80, true},
		{"just under", 79.9, false},
	}

	for _, tt := range tests {
		c := &Cluster{Name: tt.name, FillPct: tt.fill}
		if got := c.IsDue(0.80); got != tt.want {
			t.Errorf("IsDue(%q fill=%.1f) = %v, want %v", tt.name, tt.fill, got, tt.want)
		}
	}
}

func TestCluster_IsDueRecomputed(t *testing.T) {
	c := &Cluster{Name: "bin", FillPct: 50}
	if c.IsDue(0.80) {
		t.Fatal("cluster at 50% should not be due")
	}

	// Due status follows the current fill with no cached state.
	c.FillPct = 85
	if !c.IsDue(0.80) {
		t.Error("cluster at 85% should be due after fill change")
	}
	c.FillPct = 10
	if c.IsDue(0.80) {
		t.Error("cluster back at 10% should not be due")
	}
}

func TestCluster_Band(t *testing.T) {
	tests := []struct {
		fill float64
		want FillBand
	}{
		{92, FillFull},
		{80, FillFull},
		{70, FillWarn}, // >= 0.8 * threshold pct
		{64, FillWarn},
		{63.9, FillOK},
		{0, FillOK},
	}

	for _, tt := range tests {
		c := &Cluster{FillPct: tt.fill}
		if got := c.Band(0.80); got != tt.want {
			t.Errorf("Band(fill=%.1f) = %v, want %v", tt.fill, got, tt.want)
		}
	}
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		label string
		want  Zone
	}{
		{"bottom_left", ZoneBottomLeft},
		{"bottom_center", ZoneBottomCenter},
		{"bottom_right", ZoneBottomRight},
		{"canteen", ZoneCanteen},
		{"coop", ZoneCoop},
		{"other", ZoneOther},
		{"rooftop", ZoneOther}, // unknown labels sort last
		{"", ZoneOther},
	}

	for _, tt := range tests {
		if got := ParseZone(tt.label); got != tt.want {
			t.Errorf("ParseZone(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestZoneRank_TotalOrder(t *testing.T) {
	ordered := []Zone{ZoneBottomLeft, ZoneBottomCenter, ZoneBottomRight, ZoneCanteen, ZoneCoop, ZoneOther}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("Rank(%v) = %d not below Rank(%v) = %d",
				ordered[i-1], ordered[i-1].Rank(), ordered[i], ordered[i].Rank())
		}
	}
	if Zone(99).Rank() != ZoneOther.Rank() {
		t.Error("out-of-range zones should rank with ZoneOther")
	}
}
