package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"

	"staffMan/config"
	"staffMan/middleware"
	"staffMan/routes"

	"github.com/gin-gonic/gin"
)

// loadTestConfig points the app at a dedicated test database so suite
// runs never touch real data.
func loadTestConfig(uploadDir string) {
	config.LoadConfig()
	config.AppConfig.MongoDB = "employeeDB_test"
	config.AppConfig.UploadDir = uploadDir
	if config.AppConfig.JWTSecret == "" {
		config.AppConfig.JWTSecret = "test_secret_key_for_jwt_1234567890"
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func performRequest(router *gin.Engine, method, url, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	req.Host = "api.test"
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// employeeForm builds a multipart body from the given fields; pass an
// empty filename to omit the image part.
func employeeForm(fields map[string]string, courses []string, filename string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		writer.WriteField(key, value)
	}
	for _, course := range courses {
		writer.WriteField("course", course)
	}
	if filename != "" {
		part, _ := writer.CreateFormFile("imgUpload", filename)
		io.WriteString(part, "image bytes")
	}
	writer.Close()

	return body, writer.FormDataContentType()
}
