package handlers

import (
	"net/http"
)

// UploadProfilePicture handles POST /api/profile/picture with a multipart
// "image" field. The picture goes to Cloudinary; only its URL is stored.
func UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	if Uploads == nil {
		respondError(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	rec, ok := loadCurrentDay(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	_, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "An image file is required")
		return
	}

	url, err := Uploads.UploadFileFromHeader(r.Context(), header, "aura/profile_pictures")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	rec.Profile.ProfilePicture = url
	if err := Repo.Save(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, map[string]string{"profile_picture": url})
}
