package service

import (
	"context"
	"fmt"
	"time"

	"samsat-api/internal/model"
	"samsat-api/internal/repository"
	"samsat-api/pkg/rupiah"
)

// --- DTOs ---

type KendaraanResponse struct {
	NmMerekKB  string `json:"nm_merek_kb"`
	NmModelKB  string `json:"nm_model_kb"`
	NmJenisKB  string `json:"nm_jenis_kb"`
	ThRakitan  int    `json:"th_rakitan"`
	JumlahCC   int    `json:"jumlah_cc"`
	WarnaKB    string `json:"warna_kb"`
	TgAkhirPKB string `json:"tg_akhir_pkb"`
	KdPlat     int    `json:"kd_plat"`
	NoPolisi   string `json:"no_polisi"`
	KdMerekKB  int    `json:"kd_merek_kb"`
}

type NjkbResponse struct {
	NilaiJual string  `json:"nilai_jual"`
	Bobot     float64 `json:"bobot"`
}

type LokasiResponse struct {
	KdLokasi string `json:"kd_lokasi"`
	Nama     string `json:"nama"`
}

type DetailKendaraanResponse struct {
	KendaraanResponse
	KdBBM                   string         `json:"kd_bbm"`
	NmBBM                   string         `json:"nm_bbm"`
	Njkb                    NjkbResponse   `json:"njkb"`
	LokasiTransaksiTerakhir LokasiResponse `json:"lokasi_transaksi_terakhir"`
}

// --- Interface ---

type KendaraanService interface {
	GetAll(ctx context.Context, limit int) ([]KendaraanResponse, error)
	GetByNopol(ctx context.Context, nopol string) (*DetailKendaraanResponse, error)
}

type kendaraanService struct {
	repo repository.KendaraanRepository
}

func NewKendaraanService(repo repository.KendaraanRepository) KendaraanService {
	return &kendaraanService{repo: repo}
}

// --- Implementation ---

func (s *kendaraanService) GetAll(ctx context.Context, limit int) ([]KendaraanResponse, error) {
	rows, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kendaraan: %w", err)
	}

	res := make([]KendaraanResponse, 0, len(rows))
	for _, k := range rows {
		res = append(res, toKendaraanResponse(k))
	}
	return res, nil
}

// GetByNopol resolves the vehicle through the fallback table chain and
// enriches it with the NJKB valuation and the last transaction location.
// Returns (nil, nil) when the plate is unknown.
func (s *kendaraanService) GetByNopol(ctx context.Context, nopol string) (*DetailKendaraanResponse, error) {
	k, err := s.repo.FindByNopol(ctx, nopol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kendaraan: %w", err)
	}
	if k == nil {
		return nil, nil
	}

	njkb := model.Njkb{}
	if found, err := s.repo.FindNjkb(ctx, k.KdMerekKB, k.ThRakitan); err != nil {
		return nil, fmt.Errorf("failed to fetch NJKB: %w", err)
	} else if found != nil {
		njkb = *found
	}

	lokasiName, err := s.repo.LokasiName(ctx, k.KdLokasi)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lokasi: %w", err)
	}
	if lokasiName == "" {
		lokasiName = "Lokasi tidak ditemukan"
	}

	bbmName, err := s.repo.BBMName(ctx, k.KdBBM)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch BBM: %w", err)
	}

	bobot, _ := njkb.Bobot.Float64()
	res := &DetailKendaraanResponse{
		KendaraanResponse: toKendaraanResponse(k.Kendaraan),
		KdBBM:             k.KdBBM,
		NmBBM:             bbmName,
		Njkb: NjkbResponse{
			NilaiJual: rupiah.Format(njkb.NilaiJual.Round(0)),
			Bobot:     bobot,
		},
		LokasiTransaksiTerakhir: LokasiResponse{
			KdLokasi: k.KdLokasi,
			Nama:     lokasiName,
		},
	}
	return res, nil
}

// --- Helpers ---

func toKendaraanResponse(k model.Kendaraan) KendaraanResponse {
	return KendaraanResponse{
		NmMerekKB:  k.NmMerekKB,
		NmModelKB:  k.NmModelKB,
		NmJenisKB:  k.NmJenisKB,
		ThRakitan:  k.ThRakitan,
		JumlahCC:   k.JumlahCC,
		WarnaKB:    k.WarnaKB,
		TgAkhirPKB: formatDate(k.TgAkhirPKB),
		KdPlat:     k.KdPlat,
		NoPolisi:   k.NoPolisi,
		KdMerekKB:  k.KdMerekKB,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
