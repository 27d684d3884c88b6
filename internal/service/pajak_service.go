package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"samsat-api/internal/repository"
	"samsat-api/pkg/datemath"
	"samsat-api/pkg/rupiah"
	"samsat-api/pkg/taxcalc"
)

// ErrDataPajakTidakLengkap marks vehicles whose stored data cannot support a
// bill: a missing last payment date or NJKB valuation. Billing never falls
// back to a zero-based computation.
var ErrDataPajakTidakLengkap = errors.New("data kendaraan tidak lengkap untuk perhitungan pajak")

// --- DTOs (field names follow the public API contract) ---

type JarakWaktu struct {
	Hari  int `json:"hari"`
	Bulan int `json:"bulan"`
	Tahun int `json:"tahun"`
}

type PeriodePajak struct {
	Periode         string `json:"periode"`
	TotalBulanTelat int    `json:"total_bulan_telat"`
}

type RincianPKB struct {
	Pokok string `json:"pokok"`
	Denda string `json:"denda"`
}

type RincianOpsen struct {
	Opsen      string `json:"opsen"`
	DendaOpsen string `json:"denda_opsen"`
}

type TagihanRincian struct {
	IsOpsen bool         `json:"is_opsen"`
	Periode PeriodePajak `json:"periode"`
	PKB     RincianPKB   `json:"pkb"`
	Opsen   RincianOpsen `json:"opsen"`
	Total   string       `json:"total"`
}

type TagihanTotal struct {
	PKB        RincianPKB `json:"pkb"`
	Opsen      RincianPKB `json:"opsen"`
	GrandTotal string     `json:"grand_total"`
}

type Tagihan struct {
	Total   TagihanTotal     `json:"total"`
	Rincian []TagihanRincian `json:"rincian"`
}

type DetailPajakResponse struct {
	Nopol         string       `json:"nopol"`
	TahunRakitan  int          `json:"tahun_rakitan"`
	TerakhirBayar string       `json:"terakhir_bayar"`
	Jarak         JarakWaktu   `json:"jarak"`
	Njkb          NjkbResponse `json:"njkb"`
	Tagihan       Tagihan      `json:"tagihan"`
}

// --- Interface ---

type PajakService interface {
	GetDetailByNopol(ctx context.Context, nopol string) (*DetailPajakResponse, error)
}

type pajakService struct {
	repo repository.KendaraanRepository
	now  func() time.Time
}

func NewPajakService(repo repository.KendaraanRepository) PajakService {
	return &pajakService{repo: repo, now: time.Now}
}

// --- Implementation ---

// GetDetailByNopol looks the vehicle up, validates the inputs the tax math
// requires, and builds the outstanding bill. Returns (nil, nil) when the
// plate is unknown.
func (s *pajakService) GetDetailByNopol(ctx context.Context, nopol string) (*DetailPajakResponse, error) {
	k, err := s.repo.FindByNopol(ctx, nopol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kendaraan: %w", err)
	}
	if k == nil {
		return nil, nil
	}

	if k.TgAkhirPKB == nil {
		return nil, fmt.Errorf("%w: tanggal akhir PKB tidak ditemukan untuk nopol %s", ErrDataPajakTidakLengkap, k.NoPolisi)
	}

	njkb, err := s.repo.FindNjkb(ctx, k.KdMerekKB, k.ThRakitan)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NJKB: %w", err)
	}
	if njkb == nil || njkb.Missing() {
		return nil, fmt.Errorf("%w: NJKB tidak ditemukan untuk nopol %s", ErrDataPajakTidakLengkap, k.NoPolisi)
	}

	terakhirBayar := datemath.Midnight(*k.TgAkhirPKB)
	sekarang := datemath.Midnight(s.now())

	summary := taxcalc.ComputeBilling(terakhirBayar, njkb.NilaiJual, njkb.Bobot, sekarang, taxcalc.DefaultMaxPeriods)

	jarak := datemath.Between(terakhirBayar, sekarang)
	bobot, _ := njkb.Bobot.Float64()

	res := &DetailPajakResponse{
		Nopol:         k.NoPolisi,
		TahunRakitan:  k.ThRakitan,
		TerakhirBayar: terakhirBayar.Format("2006-01-02"),
		Jarak: JarakWaktu{
			Hari:  datemath.TotalDays(terakhirBayar, sekarang),
			Bulan: jarak.Months,
			Tahun: jarak.Years,
		},
		Njkb: NjkbResponse{
			NilaiJual: rupiah.Format(njkb.NilaiJual.Round(0)),
			Bobot:     bobot,
		},
		Tagihan: toTagihan(summary),
	}
	return res, nil
}

// toTagihan formats the decimal summary for the response. This is the only
// place billing amounts become display strings.
func toTagihan(s taxcalc.BillingSummary) Tagihan {
	rincian := make([]TagihanRincian, 0, len(s.Periods))
	for _, p := range s.Periods {
		rincian = append(rincian, TagihanRincian{
			IsOpsen: p.IsOpsen,
			Periode: PeriodePajak{
				Periode:         p.Label,
				TotalBulanTelat: p.MonthsLate,
			},
			PKB: RincianPKB{
				Pokok: rupiah.Format(p.Amounts.PKB),
				Denda: rupiah.Format(p.Amounts.DendaPKB),
			},
			Opsen: RincianOpsen{
				Opsen:      rupiah.Format(p.Amounts.Opsen),
				DendaOpsen: rupiah.Format(p.Amounts.DendaOpsen),
			},
			Total: rupiah.Format(p.Amounts.Total()),
		})
	}

	return Tagihan{
		Total: TagihanTotal{
			PKB: RincianPKB{
				Pokok: rupiah.Format(s.TotalPKB),
				Denda: rupiah.Format(s.TotalDendaPKB),
			},
			Opsen: RincianPKB{
				Pokok: rupiah.Format(s.TotalOpsen),
				Denda: rupiah.Format(s.TotalDendaOpsen),
			},
			GrandTotal: rupiah.Format(s.GrandTotal()),
		},
		Rincian: rincian,
	}
}
