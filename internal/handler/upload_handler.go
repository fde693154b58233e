package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/emmanuelethelbert04/account-haven/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadFormFile pushes a multipart file to the content bucket and returns
// its public URL.
func uploadFormFile(c *gin.Context, cloud cloudinary.Client, file *multipart.FileHeader, folder string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	return cloud.UploadImage(c.Request.Context(), f, folder, publicID)
}

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadListingImage lets an admin upload a listing image and returns the
// URL to reference from the listing record.
func (h *UploadHandler) UploadListingImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	url, err := uploadFormFile(c, h.cloud, file, "account-haven/listings")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
