package world

// MaxBanners is the banner slot capacity of one park.
const MaxBanners = 250

// BannerIndexNull marks an absent banner reference.
const BannerIndexNull uint16 = 0xFFFF

// Banner is one placed banner sign.
type Banner struct {
	ID         uint16
	Type       uint16
	Flags      uint8
	Text       string
	Colour     uint8
	RideIndex  uint16
	TextColour uint8
	PositionX  int32
	PositionY  int32
}

// Banners is the sparse banner slot table.
type Banners struct {
	slots [MaxBanners]*Banner
}

// Get returns the banner at index i, or nil when vacant or out of range.
func (b *Banners) Get(i uint16) *Banner {
	if int(i) >= len(b.slots) {
		return nil
	}
	return b.slots[i]
}

// GetOrCreate returns the banner at index i, allocating a vacant slot.
// Out-of-range indices return nil.
func (b *Banners) GetOrCreate(i uint16) *Banner {
	if int(i) >= len(b.slots) {
		return nil
	}
	if b.slots[i] == nil {
		b.slots[i] = &Banner{ID: i}
	}
	return b.slots[i]
}

// Count returns the number of occupied slots.
func (b *Banners) Count() int {
	n := 0
	for _, s := range b.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Reset vacates every slot.
func (b *Banners) Reset() {
	for i := range b.slots {
		b.slots[i] = nil
	}
}
