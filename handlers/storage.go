package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"courtside/services/storage"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles court image uploads (admin).
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// allowedFolders limits where uploads may land.
var allowedFolders = map[string]bool{
	"courts":        true,
	"announcements": true,
}

// UploadImageHandler handles POST /api/storage/:folder. The file is
// staged to a temp path, pushed to hosted storage, and the hosted URL
// returned for the caller to store on the record.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'courts' and 'announcements'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		utils.GetLogger().Error("Upload failed", zap.String("folder", folder), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	url, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve hosted URL", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
