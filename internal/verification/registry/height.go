package registry

import "time"

// HeightSource supplies the current block height used to stamp registrations.
type HeightSource interface {
	BlockHeight() uint64
}

// FixedHeight always reports the same height. Hosts that advance height
// themselves wrap the registry with their own HeightSource instead.
type FixedHeight uint64

func (h FixedHeight) BlockHeight() uint64 { return uint64(h) }

// WallClockHeight derives a height from the time elapsed since genesis, one
// block per interval. Times before genesis report height 0.
type WallClockHeight struct {
	Genesis  time.Time
	Interval time.Duration
	Now      func() time.Time
}

func NewWallClockHeight(genesis time.Time, interval time.Duration) *WallClockHeight {
	return &WallClockHeight{Genesis: genesis, Interval: interval, Now: time.Now}
}

func (w *WallClockHeight) BlockHeight() uint64 {
	if w.Interval <= 0 {
		return 0
	}
	elapsed := w.Now().Sub(w.Genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / w.Interval)
}
