package ui

import (
	"encoding/json"
	"net/http"
	"strings"

	"caseflow/adapters/photo"
	"caseflow/app"
	"caseflow/domain/record"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// importResponse wraps the processing result with persistence info.
type importResponse struct {
	record.Result
	Persisted int `json:"persisted"`
}

// handleImport accepts a multipart spreadsheet upload under the
// "file" field and runs the pipeline. With ?persist=1 a fully
// successful batch is also written to the record store; a batch with
// errors is returned for inspection but never persisted.
func (a *App) handleImport(w http.ResponseWriter, r *http.Request) {
	// The pipeline enforces its own limit; this just bounds memory.
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxFileBytes+1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	result := a.imports.Run(r.Context(), app.Upload{
		Filename: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  file,
	})

	resp := importResponse{Result: result}
	if r.URL.Query().Get("persist") == "1" && result.Success && len(result.Records) > 0 {
		if a.store == nil {
			writeError(w, http.StatusConflict, "persistence is not configured")
			return
		}
		if err := a.store.SaveBatch(r.Context(), result.ImportID, result.Records); err != nil {
			a.log.Error("import %s: persist failed: %v", result.ImportID, err)
			writeError(w, http.StatusInternalServerError, "batch parsed but could not be persisted")
			return
		}
		resp.Persisted = len(result.Records)
	}

	status := http.StatusOK
	if !result.Success && len(result.Records) == 0 {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

// handlePhotoProxy fetches a cloud-hosted photo server side and
// streams it back, for clients whose own fetch would be blocked by
// CORS. Only known cloud-storage photo URLs are proxied; this is not
// an open relay.
func (a *App) handlePhotoProxy(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "query parameter \"url\" is required")
		return
	}
	if !photo.IsCandidate(raw) {
		writeError(w, http.StatusBadRequest, "url is not a recognized photo reference")
		return
	}

	url, _ := photo.Rewrite(raw)
	res, err := a.fetcher.Fetch(r.Context(), url)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		writeError(w, http.StatusBadGateway, "upstream returned an error")
		return
	}
	if !strings.HasPrefix(res.ContentType, "image/") {
		writeError(w, http.StatusUnsupportedMediaType, "upstream content is not an image")
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(res.Body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
