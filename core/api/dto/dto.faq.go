package dto

// FaqCreateInput là input để tạo/cập nhật câu hỏi thường gặp
type FaqCreateInput struct {
	Question  string `json:"question" validate:"required,no_xss"` // Câu hỏi
	Answer    string `json:"answer" validate:"required"`          // Câu trả lời
	SortOrder int    `json:"sort_order"`                          // Thứ tự hiển thị (tự gán nếu 0)
}
