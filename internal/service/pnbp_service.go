package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"samsat-api/internal/repository"
	"samsat-api/pkg/datemath"
	"samsat-api/pkg/rupiah"

	"github.com/shopspring/decimal"
)

// PNBP tariffs per PP 76/2020: STNK and TNKB reissue fees, charged at the
// 5-yearly registration renewal. Roda 2/3 and roda 4+ carry different rates.
var (
	pnbpSTNKRoda2 = decimal.NewFromInt(100_000)
	pnbpSTNKRoda4 = decimal.NewFromInt(200_000)
	pnbpTNKBRoda2 = decimal.NewFromInt(60_000)
	pnbpTNKBRoda4 = decimal.NewFromInt(100_000)
)

// pnbpVisibilityMonths mirrors the tax billing window: the renewal fee shows
// up 3 months ahead of the STNK expiry.
const pnbpVisibilityMonths = 3

// --- DTOs ---

type PnbpItem struct {
	Keterangan string `json:"keterangan"`
	Biaya      string `json:"biaya"`
}

type PnbpResponse struct {
	Nopol            string     `json:"nopol"`
	NmJenisKB        string     `json:"nm_jenis_kb"`
	TgAkhirSTNK      string     `json:"tg_akhir_stnk"`
	PerpanjanganSTNK bool       `json:"perpanjangan_stnk"`
	Rincian          []PnbpItem `json:"rincian"`
	Total            string     `json:"total"`
}

// --- Interface ---

type PnbpService interface {
	GetByNopol(ctx context.Context, nopol string) (*PnbpResponse, error)
}

type pnbpService struct {
	repo repository.KendaraanRepository
	now  func() time.Time
}

func NewPnbpService(repo repository.KendaraanRepository) PnbpService {
	return &pnbpService{repo: repo, now: time.Now}
}

// --- Implementation ---

// GetByNopol computes the administrative (PNBP) fees for the 5-yearly STNK
// renewal: the reissue of the registration card and the number plate.
// Returns (nil, nil) when the plate is unknown.
func (s *pnbpService) GetByNopol(ctx context.Context, nopol string) (*PnbpResponse, error) {
	k, err := s.repo.FindByNopol(ctx, nopol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kendaraan: %w", err)
	}
	if k == nil {
		return nil, nil
	}
	if k.TgAkhirSTNK == nil || k.TgAkhirPKB == nil {
		return nil, fmt.Errorf("%w: tanggal akhir STNK/PKB tidak ditemukan untuk nopol %s", ErrDataPajakTidakLengkap, k.NoPolisi)
	}

	sekarang := datemath.Midnight(s.now())
	akhirSTNK := NormalizeAkhirSTNK(*k.TgAkhirSTNK, *k.TgAkhirPKB, sekarang)

	roda2 := isRoda2(k.NmJenisKB)
	stnk, tnkb := pnbpSTNKRoda4, pnbpTNKBRoda4
	if roda2 {
		stnk, tnkb = pnbpSTNKRoda2, pnbpTNKBRoda2
	}
	total := stnk.Add(tnkb)

	res := &PnbpResponse{
		Nopol:            k.NoPolisi,
		NmJenisKB:        k.NmJenisKB,
		TgAkhirSTNK:      akhirSTNK.Format("2006-01-02"),
		PerpanjanganSTNK: !sekarang.Before(datemath.MonthsBefore(akhirSTNK, pnbpVisibilityMonths)),
		Rincian: []PnbpItem{
			{Keterangan: "Penerbitan STNK", Biaya: rupiah.Format(stnk)},
			{Keterangan: "Penerbitan TNKB", Biaya: rupiah.Format(tnkb)},
		},
		Total: rupiah.Format(total),
	}
	return res, nil
}

// NormalizeAkhirSTNK corrects legacy rows where the stored STNK expiry ran
// ahead of the PKB year: subtract 5-year registration cycles until the year
// drops below the PKB year or below the current year.
func NormalizeAkhirSTNK(akhirSTNK, akhirPKB, today time.Time) time.Time {
	if akhirSTNK.Year() <= akhirPKB.Year() {
		return akhirSTNK
	}

	normalized := akhirSTNK
	for {
		normalized = normalized.AddDate(-5, 0, 0)
		if normalized.Year() < akhirPKB.Year() || normalized.Year() < today.Year() {
			return normalized
		}
	}
}

// isRoda2 classifies two/three-wheelers from the vehicle type name.
func isRoda2(nmJenis string) bool {
	upper := strings.ToUpper(nmJenis)
	return strings.Contains(upper, "SEPEDA MOTOR") || strings.Contains(upper, "SPM")
}
