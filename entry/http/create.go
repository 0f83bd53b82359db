package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/entry"
	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/google/uuid"
)

func (h *EntryHttpHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	authorUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	err = r.ParseMultipartForm(10 << 20) // max 10MB
	if err != nil {
		errMsg := fmt.Sprintf("failed to parse multipart form (maybe the photo is too large?): %v", err)
		errCode := "failed_to_parse_multipart_form"
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, errCode)
		return
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		errMsg := fmt.Sprintf("failed to get photo: %v", err)
		errCode := "failed_to_get_photo"
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, errCode)
		return
	}
	defer photo.Close()

	_, photoMimeType, err := getUploadedFileMIMEs(photo, header)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get MIME types: %v", err)
		errCode := "failed_to_get_mimes"
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, errCode)
		return
	}

	allowedMimes := []string{"image/jpeg", "image/png", "image/gif"}
	if !slices.Contains(allowedMimes, photoMimeType) {
		errMsg := fmt.Sprintf("unsupported photo type '%s' (allowed: jpeg, png, gif)", photoMimeType)
		errCode := "unsupported_image_type"
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, errCode)
		return
	}

	photoBytes, err := io.ReadAll(photo)
	if err != nil {
		errMsg := fmt.Sprintf("failed to read photo: %v", err)
		errCode := "failed_to_read_photo"
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, errCode)
		return
	}

	created, err := h.entrySrvc.CreateEntry(r.Context(), entry.CreateEntryParams{
		AuthorUUID:  authorUuid,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Photo:       photoBytes,
		PhotoMime:   photoMimeType,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	type createResponse struct {
		UUID            string `json:"uuid"`
		CompetitionUUID string `json:"competition_uuid"`
		ImageUrl        string `json:"image_url"`
		ThumbUrl        string `json:"thumb_url"`
	}

	httpjson.WriteSuccessJson(w, createResponse{
		UUID:            created.UUID.String(),
		CompetitionUUID: created.CompetitionUUID.String(),
		ImageUrl:        created.ImageUrl,
		ThumbUrl:        created.ThumbUrl,
	})
}

// getUploadedFileMIMEs reads up to 512 bytes from the provided multipart.File
// to sniff the actual MIME type, and also returns the client-reported one.
// It resets the file's read pointer before returning.
//
//	file:   the opened multipart.File from r.FormFile
//	header: the accompanying *multipart.FileHeader
//
// Returns (clientMime, detectedMime, error).
func getUploadedFileMIMEs(file multipart.File, header *multipart.FileHeader) (string, string, error) {
	// 1) client‐reported
	clientMime := header.Header.Get("Content-Type")

	// 2) server‐sniffed
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return clientMime, "", err
	}
	detectedMime := http.DetectContentType(buf[:n])

	// reset reader so caller can re-read the file if needed
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	return clientMime, detectedMime, nil
}
