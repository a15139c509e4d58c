package schedule

// Rates are club pricing configuration. Hourly is the court rate per hour;
// a slot is half an hour.
type Rates struct {
	Hourly   int64
	PerGuest int64
}

type Quote struct {
	CourtFee int64 `json:"court_fee"`
	GuestFee int64 `json:"guest_fee"`
	Total    int64 `json:"total"`
}

// Quote estimates the fee for a block. No charge happens here; the amount
// is informational.
func (r Rates) Quote(slotCount, guestCount int) Quote {
	courtFee := int64(slotCount) * (r.Hourly / 2)
	guestFee := int64(guestCount) * r.PerGuest
	return Quote{CourtFee: courtFee, GuestFee: guestFee, Total: courtFee + guestFee}
}
