package utility

import (
	"time"

	"github.com/google/uuid"
)

// NowISO8601 trả về thời gian hiện tại (UTC) theo định dạng ISO 8601
func NowISO8601() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewUUID sinh một UUID v4 mới dưới dạng string
func NewUUID() string {
	return uuid.NewString()
}

// NewShortID sinh một id ngắn với prefix, dùng 8 ký tự đầu của UUID
// Ví dụ: NewShortID("tp-") → "tp-1a2b3c4d"
func NewShortID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}
