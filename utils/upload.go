package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"staffMan/config"

	"github.com/gin-gonic/gin"
)

// SaveUploadedImage writes a multipart file part into the upload
// directory, prefixing the original name with the receipt time in unix
// milliseconds so repeated uploads of the same file never collide.
// Returns the stored relative path, e.g. "uploads/1714581234567-me.png".
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := config.AppConfig.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return path.Join("uploads", name), nil
}

// AbsoluteImageURL rewrites a stored relative image path into a full URL
// on the requesting host, so clients behind any hostname get a link they
// can actually fetch.
func AbsoluteImageURL(c *gin.Context, stored string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return fmt.Sprintf("%s://%s/%s", scheme, c.Request.Host, strings.ReplaceAll(stored, "\\", "/"))
}
