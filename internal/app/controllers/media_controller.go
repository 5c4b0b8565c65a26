package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/middleware"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/filestorage"
	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
	"github.com/ets-hub/etshub-backend/internal/pkg/videofeed"
)

// MediaController handles direct-to-storage uploads and the video feed
type MediaController struct {
	storage *filestorage.S3Storage
	videos  *videofeed.Client
}

// NewMediaController creates a new MediaController
func NewMediaController(storage *filestorage.S3Storage, videos *videofeed.Client) *MediaController {
	return &MediaController{storage: storage, videos: videos}
}

// PresignUpload handles issuing a direct upload URL
// @Summary Get a presigned upload URL
// @Description Issues a short-lived URL the client PUTs the file to directly; the API never proxies file bytes.
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param upload body dto.PresignUploadRequest true "Upload descriptor"
// @Success 200 {object} dto.PresignUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /uploads [post]
func (c *MediaController) PresignUpload(ctx *gin.Context) {
	var req dto.PresignUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required field: filename"))
		return
	}

	if c.storage == nil {
		middleware.HandleAPIError(ctx, apperrors.NewUpstreamError("File storage is not configured"))
		return
	}

	upload, err := c.storage.PresignUpload(ctx.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		logger.Error().Err(err).Str("filename", req.Filename).Msg("Failed to presign upload")
		middleware.HandleAPIError(ctx, apperrors.NewUpstreamError("Could not create upload URL"))
		return
	}

	ctx.JSON(http.StatusOK, dto.PresignUploadResponse{
		UploadURL: upload.UploadURL,
		FileKey:   upload.FileKey,
		FileURL:   upload.FileURL,
		Method:    upload.Method,
		Headers:   upload.Headers,
		ExpiresAt: upload.ExpiresAt,
	})
}

// ListVideos handles the public latest-videos feed
// @Summary List latest channel videos
// @Tags media
// @Produce json
// @Param limit query int false "Number of videos (default 10, max 50)" default(10)
// @Success 200 {array} dto.VideoResponse
// @Router /videos [get]
func (c *MediaController) ListVideos(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	videos, err := c.videos.Latest(ctx.Request.Context(), limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch video feed")
		middleware.HandleAPIError(ctx, apperrors.NewUpstreamError("Could not load the video feed"))
		return
	}

	out := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, dto.VideoResponse{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			PublishedAt:  v.PublishedAt,
			URL:          "https://www.youtube.com/watch?v=" + v.ID,
		})
	}

	ctx.JSON(http.StatusOK, out)
}
