package handlers

import (
	"io"
	"net/http"
	"strings"
)

const maxImageUploadBytes = 10 << 20 // 10 MB

// readImageField pulls the multipart "image" field out of the request and
// returns its bytes and MIME type. On failure the response is written and
// ok is false.
func readImageField(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "An image file is required")
		return nil, "", false
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		respondError(w, http.StatusBadRequest, "Only image uploads are supported")
		return nil, "", false
	}

	imageBytes, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read image")
		return nil, "", false
	}
	return imageBytes, mimeType, true
}

// ScanMeal handles POST /api/meals/scan: identify the foods in the photo,
// look up nutrition for each, and return the aggregated analysis.
func ScanMeal(w http.ResponseWriter, r *http.Request) {
	if AI == nil {
		respondError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}

	imageBytes, mimeType, ok := readImageField(w, r)
	if !ok {
		return
	}

	analysis, err := AI.AnalyzeMealImage(r.Context(), imageBytes, mimeType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, analysis)
}
