package model

import "github.com/shopspring/decimal"

// Njkb is the government-assessed valuation for a make + build-year
// combination (table t_trf_nj): the sale value used as the PKB tax base and
// the weight coefficient. A zero-valued Njkb means no valuation row exists.
type Njkb struct {
	NilaiJual decimal.Decimal `gorm:"column:nilai_jual" json:"nilai_jual"`
	Bobot     decimal.Decimal `gorm:"column:bobot" json:"bobot"`
}

// Missing reports whether the valuation is unusable as a tax base. Both the
// sale value and the weight coefficient are factors of the PKB formula, so a
// zero in either would silently produce a zero-based bill.
func (n Njkb) Missing() bool {
	return n.NilaiJual.IsZero() || n.Bobot.IsZero()
}
