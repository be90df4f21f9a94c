package dto

// ReviewCreateInput là input để admin tạo/cập nhật đánh giá
type ReviewCreateInput struct {
	ReviewerName string `json:"reviewer_name" validate:"required,no_xss"` // Tên người đánh giá
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`   // Số sao
	Comment      string `json:"comment" validate:"required,no_xss"`       // Nội dung
	ReviewDate   string `json:"review_date,omitempty"`                    // Ngày đánh giá (giữ nguyên nếu cung cấp)
}

// ReviewSyncResult là kết quả của một lần đồng bộ Trustpilot
type ReviewSyncResult struct {
	Success     bool   `json:"success"`      // Lần sync có hoàn tất không
	SyncedCount int    `json:"synced_count"` // Số review mới được ghi
	TotalFound  int    `json:"total_found"`  // Tổng số review tìm thấy trên trang
	Message     string `json:"message"`      // Mô tả kết quả
}

// ReviewSyncStatus là trạng thái đồng bộ Trustpilot
type ReviewSyncStatus struct {
	Domain                 string `json:"domain"`                   // Domain được cấu hình
	LastSync               string `json:"last_sync,omitempty"`      // Thời điểm sync gần nhất (ISO 8601)
	TrustpilotReviewsCount int64  `json:"trustpilot_reviews_count"` // Số review nguồn trustpilot trong store
	APIKeyConfigured       bool   `json:"api_key_configured"`       // Có API key Trustpilot hay không
}
