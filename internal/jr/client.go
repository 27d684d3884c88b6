package jr

import (
	"bytes"
	"context"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"samsat-api/internal/config"
	"samsat-api/internal/model"
	"samsat-api/pkg/datemath"

	"github.com/cenkalti/backoff/v4"
)

// tglFormat is the provider's date layout (DD/MM/YYYY).
const tglFormat = "02/01/2006"

// SemanticError is a failure reported by the provider itself (non-"OK" mode
// or an empty response). It is never retried.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string {
	return "API JR error: " + e.Msg
}

// Client calls the external JR tariff service with a bounded per-attempt
// timeout and exponential-backoff retries on transient transport failures.
type Client struct {
	cfg    config.JRConfig
	http   *http.Client
	logger *slog.Logger

	// newBackOff is swapped in tests to observe the schedule.
	newBackOff func() backoff.BackOff
}

// NewClient builds a JR client from injected provider settings.
// MaxAttempts is floored at 1; the uint64 conversion for the retry budget
// must never see a non-positive value.
func NewClient(cfg config.JRConfig, logger *slog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: logger,
	}
	c.newBackOff = c.defaultBackOff
	return c
}

func (c *Client) defaultBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.BackoffBase
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	return bo
}

// BuildRequest derives the provider payload from vehicle attributes.
// The vehicle class is the first 3 digits of the make code, the electric
// flag is set for make codes starting with 5, and the three historical
// "masa laku" dates all equal the last PKB expiry. The forward date rolls
// the expiry ahead one year at a time until it passes today.
func (c *Client) BuildRequest(k *model.KendaraanDetail, now time.Time) (*Request, error) {
	if k.TgAkhirPKB == nil {
		return nil, &SemanticError{Msg: "Data tanggal akhir PKB tidak ditemukan untuk kendaraan ini"}
	}

	merek := strconv.Itoa(k.KdMerekKB)
	golKend := merek
	if len(golKend) > 3 {
		golKend = golKend[:3]
	}

	listrik := "N"
	if len(merek) > 0 && merek[0] == '5' {
		listrik = "Y"
	}

	akhirPKB := datemath.Midnight(*k.TgAkhirPKB)
	today := datemath.Midnight(now)
	masaLakuLalu := akhirPKB.Format(tglFormat)
	masaLakuYad := datemath.NextAnnualAfter(akhirPKB, today).Format(tglFormat)

	return &Request{
		APIKey: c.cfg.APIKey,
		Cat:    c.cfg.Cat,
		Tipe:   c.cfg.Tipe,
		Params: []RequestParams{
			{
				SesID:             c.cfg.SesID,
				KodeCabang:        c.cfg.KodeCabang,
				NomorPolisi:       k.NoPolisi,
				GolKend:           golKend,
				KodePlat:          strconv.Itoa(k.KdPlat),
				CC:                strconv.Itoa(k.JumlahCC),
				JmlBulanProrata:   "0",
				TglTransaksi:      today.Format(tglFormat),
				MasaLakuLalu:      masaLakuLalu,
				MasaLakuLaluTB:    masaLakuLalu,
				MasaLakuLaluTBNBD: masaLakuLalu,
				MasaLakuYad:       masaLakuYad,
				KendListrik:       listrik,
			},
		},
	}, nil
}

// Fetch posts the request to the provider and maps the response. Transient
// transport failures are retried up to the configured attempt budget with
// exponential backoff; semantic and non-transient failures surface at once.
func (c *Client) Fetch(ctx context.Context, req *Request) (*Quote, error) {
	var quote *Quote
	var lastErr error
	attempt := 0

	op := func() error {
		attempt++
		q, err := c.attempt(ctx, req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		quote = q
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("JR attempt failed, retrying",
			"attempt", attempt,
			"max_attempts", c.cfg.MaxAttempts,
			"wait", wait,
			"error", err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(c.newBackOff(), uint64(c.cfg.MaxAttempts-1)), ctx)

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		var semantic *SemanticError
		if errors.As(err, &semantic) {
			return nil, semantic
		}
		return nil, c.classify(lastErr, attempt)
	}

	return quote, nil
}

// attempt performs a single POST under the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, req *Request) (*Quote, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode JR request: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create JR request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &SemanticError{
			Msg: fmt.Sprintf("API JR mengembalikan error (%d): %s", resp.StatusCode, string(raw)),
		}
	}

	var results []apiResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, &SemanticError{Msg: "response dari API JR tidak dapat dibaca: " + err.Error()}
	}
	if len(results) == 0 {
		return nil, &SemanticError{Msg: "response dari API JR kosong"}
	}

	res := results[0]
	if res.Mode != modeOK {
		return nil, &SemanticError{Msg: res.Msg}
	}

	return mapQuote(res), nil
}

// isRetryable reports whether a transport error belongs to the transient
// classes worth another attempt: timeouts, connection reset, connection
// refused. DNS, certificate and semantic failures fail fast.
func isRetryable(err error) bool {
	var semantic *SemanticError
	if errors.As(err, &semantic) {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}
	if isCertError(err) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	return false
}

func isCertError(err error) bool {
	var unknownAuthority x509.UnknownAuthorityError
	var invalidCert x509.CertificateInvalidError
	var hostname x509.HostnameError
	return errors.As(err, &unknownAuthority) || errors.As(err, &invalidCert) || errors.As(err, &hostname)
}

// classify translates the final transport error into an actionable message
// carrying the attempt count and target endpoint.
func (c *Client) classify(err error, attempts int) error {
	if err == nil {
		return fmt.Errorf("gagal terhubung ke API JR setelah %dx percobaan. URL: %s", attempts, c.cfg.URL)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("domain API JR tidak ditemukan. Pastikan URL sudah benar: %s", c.cfg.URL)
	}
	if isCertError(err) {
		return errors.New("SSL certificate API JR bermasalah. Hubungi penyedia API JR")
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("koneksi ke API JR ditolak. Server mungkin tidak aktif atau port salah. Sudah dicoba %dx", attempts)
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return fmt.Errorf("koneksi ke API JR terputus. Server memutuskan koneksi. Sudah dicoba %dx", attempts)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("request ke API JR timeout setelah %s. Server %s tidak merespon. Sudah dicoba %dx",
			c.cfg.Timeout, c.cfg.URL, attempts)
	}

	return fmt.Errorf("gagal terhubung ke API JR setelah %dx percobaan. URL: %s: %w", attempts, c.cfg.URL, err)
}
