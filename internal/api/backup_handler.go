package api

import (
	"errors"
	"net/http"

	"fitmarket/personal-app/internal/service"

	"github.com/gin-gonic/gin"
)

// BackupHandler exposes the data-export feature.
type BackupHandler struct {
	backupService service.BackupService
}

func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export snapshots all collections into object storage and returns the
// object key of the created backup.
func (h *BackupHandler) Export(c *gin.Context) {
	key, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBackupDisabled) {
			abortWithError(c, http.StatusNotImplemented, "Backup storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to export backup")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"object_key": key})
}

// DownloadURL returns a presigned URL for a previously exported backup.
func (h *BackupHandler) DownloadURL(c *gin.Context) {
	key := c.Query("object_key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "object_key query parameter is required")
		return
	}

	url, err := h.backupService.DownloadURL(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrBackupDisabled) {
			abortWithError(c, http.StatusNotImplemented, "Backup storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Delete removes a previously exported backup from object storage.
func (h *BackupHandler) Delete(c *gin.Context) {
	key := c.Query("object_key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "object_key query parameter is required")
		return
	}

	if err := h.backupService.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, service.ErrBackupDisabled) {
			abortWithError(c, http.StatusNotImplemented, "Backup storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete backup")
		return
	}
	c.Status(http.StatusNoContent)
}
