package world

import "testing"

func TestBannersSlots(t *testing.T) {
	var b Banners
	if b.Get(3) != nil {
		t.Error("vacant slot should be nil")
	}
	bn := b.GetOrCreate(3)
	if bn == nil || bn.ID != 3 {
		t.Fatalf("GetOrCreate = %+v", bn)
	}
	if b.GetOrCreate(3) != bn {
		t.Error("GetOrCreate should return the existing banner")
	}
	if got := b.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
	if b.GetOrCreate(MaxBanners) != nil {
		t.Error("out of range index should fail")
	}
	b.Reset()
	if b.Count() != 0 {
		t.Error("Reset should vacate all slots")
	}
}
