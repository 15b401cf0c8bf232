package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"huzla/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves listing-image upload endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted upload buckets.
var allowedBuckets = map[string]bool{
	"services": true,
	"profiles": true,
}

// UploadImageHandler handles POST /api/storage/upload/:bucket (provider only).
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid bucket; allowed values are 'services' and 'profiles'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	downloadURL, err := h.StorageSvc.UploadImage(c, tempFilePath, "images/"+bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to upload file", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"downloadURL": downloadURL,
	})
}
