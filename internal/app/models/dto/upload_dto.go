package dto

import "time"

// PresignUploadRequest asks for a direct-to-storage upload URL.
type PresignUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType"`
}

// PresignUploadResponse carries everything the client needs to PUT the
// file itself and reference it afterwards.
type PresignUploadResponse struct {
	UploadURL string            `json:"uploadUrl"`
	FileKey   string            `json:"fileKey"`
	FileURL   string            `json:"fileUrl"`
	Method    string            `json:"method" example:"PUT"`
	Headers   map[string]string `json:"headers"`
	ExpiresAt time.Time         `json:"expiresAt"`
}
