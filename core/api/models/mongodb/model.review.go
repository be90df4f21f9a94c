package models

// Review lưu đánh giá của khách hàng, gồm review do admin tạo và review
// đồng bộ từ Trustpilot (source = "trustpilot", id dạng "tp-xxxxxxxx").
// Compound unique index (reviewer_name, comment, source) chặn trùng lặp
// khi nhiều lần sync chạy song song. Index chỉ áp cho source = "trustpilot"
// để admin vẫn tạo được các review trùng tên và nội dung.
type Review struct {
	ID           string `json:"id" bson:"_id"`                                                           // ID đánh giá
	ReviewerName string `json:"reviewer_name" bson:"reviewer_name" index:"compound:reviewer_comment_source_unique"` // Tên người đánh giá
	Rating       int    `json:"rating" bson:"rating"`                                                    // Số sao (1..5)
	Comment      string `json:"comment" bson:"comment" index:"compound:reviewer_comment_source_unique"`  // Nội dung đánh giá
	ReviewDate   string `json:"review_date" bson:"review_date"`                                          // Ngày đánh giá (ISO 8601)
	CreatedAt    string `json:"created_at" bson:"created_at"`                                            // Thời gian tạo bản ghi
	Source       string `json:"source,omitempty" bson:"source,omitempty" index:"compound:reviewer_comment_source_unique,partial:source=trustpilot"` // Nguồn (trustpilot hoặc rỗng)
}
