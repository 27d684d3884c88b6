package model

import "time"

// Candidate transaction tables, queried in order; the first one holding the
// plate wins. Legacy convention inherited from the upstream dispenda schema.
var KendaraanTables = []string{"t_trnkb", "t_mstkb", "tt_trnkb"}

// Kendaraan is one row of a legacy vehicle transaction table. Column names
// follow the upstream schema verbatim.
type Kendaraan struct {
	NmMerekKB  string     `gorm:"column:nm_merek_kb" json:"nm_merek_kb"`
	NmModelKB  string     `gorm:"column:nm_model_kb" json:"nm_model_kb"`
	NmJenisKB  string     `gorm:"column:nm_jenis_kb" json:"nm_jenis_kb"`
	ThRakitan  int        `gorm:"column:th_rakitan" json:"th_rakitan"`
	JumlahCC   int        `gorm:"column:jumlah_cc" json:"jumlah_cc"`
	WarnaKB    string     `gorm:"column:warna_kb" json:"warna_kb"`
	TgAkhirPKB *time.Time `gorm:"column:tg_akhir_pkb" json:"tg_akhir_pkb"`
	KdPlat     int        `gorm:"column:kd_plat" json:"kd_plat"`
	NoPolisi   string     `gorm:"column:no_polisi" json:"no_polisi"`
	KdMerekKB  int        `gorm:"column:kd_merek_kb" json:"kd_merek_kb"`
}

// KendaraanDetail extends Kendaraan with the columns only the detail
// endpoints need (STNK expiry, fuel code, last transaction location).
type KendaraanDetail struct {
	Kendaraan
	TgAkhirSTNK *time.Time `gorm:"column:tg_akhir_stnk" json:"tg_akhir_stnk"`
	KdBBM       string     `gorm:"column:kd_bbm" json:"kd_bbm"`
	KdLokasi    string     `gorm:"column:kd_lokasi" json:"kd_lokasi"`
}
