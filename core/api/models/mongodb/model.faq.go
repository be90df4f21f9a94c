package models

// Faq lưu câu hỏi thường gặp
type Faq struct {
	ID        string `json:"id" bson:"_id"`                               // ID câu hỏi
	Question  string `json:"question" bson:"question"`                    // Câu hỏi
	Answer    string `json:"answer" bson:"answer"`                        // Câu trả lời
	SortOrder int    `json:"sort_order" bson:"sort_order" index:"single"` // Thứ tự hiển thị
}
