package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize caps a single image upload.
const MaxUploadSize = 5 * 1024 * 1024 // 5MB

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// UploadController accepts product image uploads and records them under the
// upload directory, which is served at /uploads.
type UploadController struct {
	dir string
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{dir: dir}
}

// UploadImage handles POST /api/upload (multipart field "image").
func (uc *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}

	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image exceeds the 5MB size limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported image type"})
		return
	}

	name := uuid.NewString() + ext
	dest := filepath.Join(uc.dir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		zap.L().Error("Failed to store uploaded image", zap.String("dest", dest), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
		return
	}

	zap.L().Info("Image uploaded", zap.String("file", name), zap.Int64("size", file.Size))
	c.JSON(http.StatusOK, gin.H{"imageUrl": "/uploads/" + name})
}
