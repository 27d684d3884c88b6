package repository

import (
	"context"
	"fmt"
	"strings"

	"samsat-api/internal/model"

	"gorm.io/gorm"
)

// KendaraanRepository reads vehicle data from the legacy Samsat tables.
// Lookups walk the candidate tables in a fixed order and the first non-empty
// result wins.
type KendaraanRepository interface {
	List(ctx context.Context, limit int) ([]model.Kendaraan, error)
	FindByNopol(ctx context.Context, nopol string) (*model.KendaraanDetail, error)
	FindNjkb(ctx context.Context, kdMerekKB int, thRakitan int) (*model.Njkb, error)
	LokasiName(ctx context.Context, kdLokasi string) (string, error)
	BBMName(ctx context.Context, kdBBM string) (string, error)
}

type kendaraanRepository struct {
	db *gorm.DB
}

func NewKendaraanRepository(db *gorm.DB) KendaraanRepository {
	return &kendaraanRepository{db: db}
}

// NormalizeNopol strips whitespace and uppercases a plate number so matching
// is insensitive to both.
func NormalizeNopol(nopol string) string {
	return strings.ToUpper(strings.ReplaceAll(nopol, " ", ""))
}

func (r *kendaraanRepository) List(ctx context.Context, limit int) ([]model.Kendaraan, error) {
	for _, table := range model.KendaraanTables {
		sql := fmt.Sprintf(`
			SELECT nm_merek_kb, nm_model_kb, nm_jenis_kb, th_rakitan, jumlah_cc,
			       warna_kb, tg_akhir_pkb, kd_plat, no_polisi, kd_merek_kb
			FROM %s
			WHERE tg_bayar > '1990-01-01'
			ORDER BY tg_bayar DESC, no_urut_trn DESC
			LIMIT ?`, table)

		var rows []model.Kendaraan
		if err := r.db.WithContext(ctx).Raw(sql, limit).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("query %s: %w", table, err)
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return []model.Kendaraan{}, nil
}

// FindByNopol returns the newest transaction row for a plate, or nil when the
// plate is unknown to every candidate table. The plate comparison removes
// spaces and uppercases on both sides.
func (r *kendaraanRepository) FindByNopol(ctx context.Context, nopol string) (*model.KendaraanDetail, error) {
	normalized := NormalizeNopol(nopol)

	for _, table := range model.KendaraanTables {
		sql := fmt.Sprintf(`
			SELECT nm_merek_kb, nm_model_kb, nm_jenis_kb, th_rakitan, jumlah_cc,
			       warna_kb, tg_akhir_pkb, tg_akhir_stnk, kd_plat, no_polisi,
			       kd_merek_kb, kd_bbm, kd_lokasi
			FROM %s
			WHERE UPPER(REPLACE(no_polisi, ' ', '')) = ?
			ORDER BY tg_bayar DESC
			LIMIT 1`, table)

		var rows []model.KendaraanDetail
		if err := r.db.WithContext(ctx).Raw(sql, normalized).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("query %s: %w", table, err)
		}
		if len(rows) > 0 {
			return &rows[0], nil
		}
	}
	return nil, nil
}

// FindNjkb returns the valuation row for a make and build year, or nil when
// none exists. Callers decide whether a missing valuation is an error.
func (r *kendaraanRepository) FindNjkb(ctx context.Context, kdMerekKB int, thRakitan int) (*model.Njkb, error) {
	var rows []model.Njkb
	err := r.db.WithContext(ctx).
		Raw(`SELECT nilai_jual, bobot FROM t_trf_nj WHERE kd_merek_kb = ? AND thn = ?`, kdMerekKB, thRakitan).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query t_trf_nj: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *kendaraanRepository) LokasiName(ctx context.Context, kdLokasi string) (string, error) {
	var rows []struct {
		NmLokasi string `gorm:"column:nm_lokasi"`
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT nm_lokasi FROM t_nm_lokasi WHERE kd_lokasi = ? LIMIT 1`, kdLokasi).
		Scan(&rows).Error
	if err != nil {
		return "", fmt.Errorf("query t_nm_lokasi: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].NmLokasi, nil
}

func (r *kendaraanRepository) BBMName(ctx context.Context, kdBBM string) (string, error) {
	var rows []struct {
		NmBBM string `gorm:"column:nm_bbm"`
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT nm_bbm FROM t_bbm WHERE kd_bbm = ? LIMIT 1`, kdBBM).
		Scan(&rows).Error
	if err != nil {
		return "", fmt.Errorf("query t_bbm: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].NmBBM, nil
}
