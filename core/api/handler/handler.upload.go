package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/utility"

	"github.com/gofiber/fiber/v3"
)

// allowedImageTypes là các content type ảnh được phép upload
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadHandler xử lý upload và trả ảnh sản phẩm
type UploadHandler struct {
	BaseHandler
	uploadDir string
}

// NewUploadHandler tạo một instance mới của UploadHandler, đảm bảo thư mục upload tồn tại
func NewUploadHandler() (*UploadHandler, error) {
	uploadDir := global.ServerConfig.UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %v", err)
	}

	return &UploadHandler{
		uploadDir: uploadDir,
	}, nil
}

// HandleUpload nhận file ảnh, lưu với tên uuid và trả về đường dẫn công khai
func (h *UploadHandler) HandleUpload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		file, err := c.FormFile("file")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file upload",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		contentType := file.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Chỉ chấp nhận ảnh JPEG, PNG, WebP hoặc GIF",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		ext := "jpg"
		if idx := strings.LastIndex(file.Filename, "."); idx >= 0 && idx < len(file.Filename)-1 {
			ext = file.Filename[idx+1:]
		}
		filename := fmt.Sprintf("%s.%s", utility.NewUUID(), ext)

		if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Không lưu được file upload",
				common.StatusInternalServerError,
				err,
			))
			return nil
		}

		h.HandleResponse(c, fiber.Map{"url": fmt.Sprintf("/api/uploads/%s", filename)}, nil)
		return nil
	})
}

// HandleServe trả về ảnh đã upload theo tên file.
// Tên file được làm sạch để không đọc ra ngoài thư mục upload.
func (h *UploadHandler) HandleServe(c fiber.Ctx) error {
	filename := filepath.Base(c.Params("filename"))
	path := filepath.Join(h.uploadDir, filename)

	if _, err := os.Stat(path); err != nil {
		return JSONResponse(c, common.StatusNotFound, fiber.Map{
			"code":    common.ErrCodeValidationInput.Code,
			"message": "Không tìm thấy ảnh",
			"status":  "error",
		})
	}

	return c.SendFile(path)
}
