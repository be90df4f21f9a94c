package models

// Category lưu danh mục sản phẩm. Slug được sinh từ tên:
// lowercase, khoảng trắng thành "-", "&" thành "and".
type Category struct {
	ID   string `json:"id" bson:"_id"`                 // ID danh mục
	Name string `json:"name" bson:"name"`              // Tên danh mục
	Slug string `json:"slug" bson:"slug" index:"single"` // Slug dùng trên URL
}
