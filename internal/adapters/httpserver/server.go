package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/logihub/internal/adapters/excel"
	"github.com/phenrril/logihub/internal/domain"
	"github.com/phenrril/logihub/internal/usecase"
)

const maxUploadBytes = 32 << 20

// Server is the JSON surface the dashboard consumes. Presentation itself
// lives elsewhere; this only exposes the reconciliation core.
type Server struct {
	mux       *http.ServeMux
	master    *usecase.MasterUC
	reconcile *usecase.ReconcileUC
	sales     *usecase.SalesUC
	stats     *usecase.StatsUC
	cache     *excel.Cache
	dataDir   string

	mu         sync.Mutex
	lastMaster *usecase.ImportReport
	lastSales  *usecase.SalesImportReport
}

func New(master *usecase.MasterUC, reconcile *usecase.ReconcileUC, sales *usecase.SalesUC, stats *usecase.StatsUC, cache *excel.Cache, dataDir string) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		master:    master,
		reconcile: reconcile,
		sales:     sales,
		stats:     stats,
		cache:     cache,
		dataDir:   dataDir,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/snapshot", s.apiSnapshot)
	s.mux.HandleFunc("/api/analysis", s.apiAnalysis)
	s.mux.HandleFunc("/api/products/stats", s.apiProductStats)

	s.mux.HandleFunc("/admin/import/master", s.adminImportMaster)
	s.mux.HandleFunc("/admin/import/sales", s.adminImportSales)
	s.mux.HandleFunc("/admin/import/last", s.adminLastImport)
	s.mux.HandleFunc("/admin/cache/clear", s.adminCacheClear)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fileStatus maps the two user-actionable file conditions onto distinct
// status codes so the dashboard can tell them apart.
func fileStatus(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		writeError(w, http.StatusNotFound, "source file not found")
	case errors.Is(err, domain.ErrFileLocked):
		writeError(w, http.StatusLocked, "source file is open in another program")
	default:
		return false
	}
	return true
}

// GET /api/snapshot?file=...  — current stock/sales view. Without the file
// param the newest merged export under the data dir is used.
func (s *Server) apiSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	path := r.URL.Query().Get("file")
	if path == "" {
		p, err := excel.LatestSnapshot(s.dataDir)
		if err != nil {
			if !fileStatus(w, err) {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		path = p
	}
	snap, err := s.reconcile.Snapshot(r.Context(), path)
	if err != nil {
		if !fileStatus(w, err) {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GET /api/analysis?start=2006-01-02&end=2006-01-02
func (s *Server) apiAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	start, err1 := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	end, err2 := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "start and end must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end date precedes start date")
		return
	}
	stats, err := s.stats.Analyze(r.Context(), start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
		"rows":  stats,
	})
}

// GET /api/products/stats?id=N&start=...&end=...  (range optional)
func (s *Server) apiProductStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	var start, end *time.Time
	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start must be YYYY-MM-DD")
			return
		}
		start = &t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end must be YYYY-MM-DD")
			return
		}
		end = &t
	}
	stats, err := s.stats.ProductStats(r.Context(), uint(id), start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// stageUpload copies the multipart file to a temp path so the excel readers
// can open it like any on-disk workbook. Caller removes it.
func stageUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return "", err
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "logihub-upload-*.xlsx")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// POST /admin/import/master  (multipart, field "file")
func (s *Server) adminImportMaster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	path, err := stageUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "upload failed: "+err.Error())
		return
	}
	defer os.Remove(path)

	rep, err := s.master.ImportWorkbook(r.Context(), path)
	if err != nil {
		log.Error().Err(err).Msg("master import failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.mu.Lock()
	s.lastMaster = rep
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rep)
}

// POST /admin/import/sales  (multipart, field "file")
func (s *Server) adminImportSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	path, err := stageUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "upload failed: "+err.Error())
		return
	}
	defer os.Remove(path)

	rep, err := s.sales.ImportWorkbook(r.Context(), path)
	if err != nil {
		log.Error().Err(err).Msg("sales history import failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.mu.Lock()
	s.lastSales = rep
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rep)
}

// GET /admin/import/last — the most recent import reports, for the progress
// panel.
func (s *Server) adminLastImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"master": s.lastMaster,
		"sales":  s.lastSales,
	})
}

// POST /admin/cache/clear — explicit invalidation signal for the workbook
// cache.
func (s *Server) adminCacheClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.cache.Invalidate()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
