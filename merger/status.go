package merger

// Status mirrors arl/go-detour's detour.DtStatus bitmask (status.go):
// high bit for succeed/fail, low bits as detail flags, rather than an ad
// hoc error type for the "not fatal, but the caller should know" outcomes
// of spec §7.
type Status uint32

const (
	StatusSuccess Status = 1 << 30

	StatusDetailMask  = 0x0ffffff
	StatusHoleSkipped = 1 << 0 // at least one hole had no visible bridge
)

// Succeeded reports whether s has the success bit set (merge always
// succeeds: holes are skipped, not fatal, per spec §7).
func (s Status) Succeeded() bool { return s&StatusSuccess != 0 }

// HasDetail reports whether detail flag d is set on s.
func (s Status) HasDetail(d Status) bool { return s&d != 0 }
