package jr

// RequestParams is the per-vehicle parameter block of a JR tariff request.
// Field names and string typing are fixed by the provider.
type RequestParams struct {
	SesID             string `json:"SesID"`
	KodeCabang        string `json:"KODE_CABANG"`
	NomorPolisi       string `json:"NOMOR_POLISI"`
	GolKend           string `json:"GOL_KEND"`
	KodePlat          string `json:"KODE_PLAT"`
	CC                string `json:"CC"`
	JmlBulanProrata   string `json:"JML_BULAN_PRORATA"`
	TglTransaksi      string `json:"TGL_TRANSAKSI"`
	MasaLakuLalu      string `json:"MASA_LAKU_LALU"`
	MasaLakuLaluTB    string `json:"MASA_LAKU_LALU_TB"`
	MasaLakuLaluTBNBD string `json:"MASA_LAKU_LALU_TB_NBD"`
	MasaLakuYad       string `json:"MASA_LAKU_YAD"`
	KendListrik       string `json:"KEND_LISTRIK"`
}

// Request is the JSON body posted to the JR endpoint: provider credentials
// plus a single-element parameter array.
type Request struct {
	APIKey string          `json:"APIKey"`
	Cat    string          `json:"Cat"`
	Tipe   string          `json:"Tipe"`
	Params []RequestParams `json:"Params"`
}

// apiResult is one element of the provider's response array. The monetary
// fields are positional: index 0 is the current period, 1-4 are arrears one
// to four years back; KD/SW/DD are the three tariff categories of each period.
type apiResult struct {
	SessID       string `json:"SESSID"`
	Msg          string `json:"MSG"`
	Mode         string `json:"MODE"`
	JrRefID      string `json:"JR_REF_ID"`
	Nopol        string `json:"NOPOL"`
	KodeGolongan string `json:"KODE_GOLONGAN"`
	KodeJenis    string `json:"KODE_JENIS"`
	KodePlatJR   string `json:"KODE_PLAT_JR"`

	NilaiKD0 int64 `json:"NILAI_KD_0"`
	NilaiSW0 int64 `json:"NILAI_SW_0"`
	NilaiDD0 int64 `json:"NILAI_DD_0"`
	NilaiKD1 int64 `json:"NILAI_KD_1"`
	NilaiSW1 int64 `json:"NILAI_SW_1"`
	NilaiDD1 int64 `json:"NILAI_DD_1"`
	NilaiKD2 int64 `json:"NILAI_KD_2"`
	NilaiSW2 int64 `json:"NILAI_SW_2"`
	NilaiDD2 int64 `json:"NILAI_DD_2"`
	NilaiKD3 int64 `json:"NILAI_KD_3"`
	NilaiSW3 int64 `json:"NILAI_SW_3"`
	NilaiDD3 int64 `json:"NILAI_DD_3"`
	NilaiKD4 int64 `json:"NILAI_KD_4"`
	NilaiSW4 int64 `json:"NILAI_SW_4"`
	NilaiDD4 int64 `json:"NILAI_DD_4"`

	NilaiProrata   int64  `json:"NILAI_PRORATA"`
	OtorisasiIWKBU string `json:"OTORISASI_IWKBU"`
}

// modeOK is the sentinel the provider sets on a successful lookup.
const modeOK = "OK"

// TarifPeriode is one billing period of the quote: the current period or a
// year of arrears. The three tariff components keep their statutory names:
// KD is kecelakaan diri, SW santunan wafat, DD dana derma.
type TarifPeriode struct {
	Keterangan     string `json:"keterangan"`
	KecelakaanDiri int64  `json:"kecelakaan_diri"`
	SantunanWafat  int64  `json:"santunan_wafat"`
	DanaDerma      int64  `json:"dana_derma"`
	Subtotal       int64  `json:"subtotal"`
}

// TotalTarif rolls the five periods up per component plus a grand total.
type TotalTarif struct {
	KecelakaanDiri int64 `json:"kecelakaan_diri"`
	SantunanWafat  int64 `json:"santunan_wafat"`
	DanaDerma      int64 `json:"dana_derma"`
	Total          int64 `json:"total"`
}

// Quote is the structured tariff breakdown returned to callers.
type Quote struct {
	RefID         string         `json:"ref_id"`
	Nopol         string         `json:"nopol"`
	Golongan      string         `json:"golongan"`
	Jenis         string         `json:"jenis"`
	TarifPerTahun []TarifPeriode `json:"tarif_per_tahun"`
	TotalTarif    TotalTarif     `json:"total_tarif"`
	NilaiProrata  int64          `json:"nilai_prorata"`
}

// periodeLabels maps positional index to the period description.
var periodeLabels = [5]string{
	"Periode Berjalan",
	"Tunggakan 1 tahun lalu",
	"Tunggakan 2 tahun lalu",
	"Tunggakan 3 tahun lalu",
	"Tunggakan 4 tahun lalu",
}

// mapQuote flattens the provider's positional fields into the structured
// breakdown with per-period subtotals and grand totals.
func mapQuote(res apiResult) *Quote {
	triples := [5][3]int64{
		{res.NilaiKD0, res.NilaiSW0, res.NilaiDD0},
		{res.NilaiKD1, res.NilaiSW1, res.NilaiDD1},
		{res.NilaiKD2, res.NilaiSW2, res.NilaiDD2},
		{res.NilaiKD3, res.NilaiSW3, res.NilaiDD3},
		{res.NilaiKD4, res.NilaiSW4, res.NilaiDD4},
	}

	quote := &Quote{
		RefID:        res.JrRefID,
		Nopol:        res.Nopol,
		Golongan:     res.KodeGolongan,
		Jenis:        res.KodeJenis,
		NilaiProrata: res.NilaiProrata,
	}

	for i, t := range triples {
		kd, sw, dd := t[0], t[1], t[2]
		quote.TarifPerTahun = append(quote.TarifPerTahun, TarifPeriode{
			Keterangan:     periodeLabels[i],
			KecelakaanDiri: kd,
			SantunanWafat:  sw,
			DanaDerma:      dd,
			Subtotal:       kd + sw + dd,
		})
		quote.TotalTarif.KecelakaanDiri += kd
		quote.TotalTarif.SantunanWafat += sw
		quote.TotalTarif.DanaDerma += dd
	}
	quote.TotalTarif.Total = quote.TotalTarif.KecelakaanDiri + quote.TotalTarif.SantunanWafat + quote.TotalTarif.DanaDerma

	return quote
}
