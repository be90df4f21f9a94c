package models

// Variation là một biến thể của sản phẩm (gói nạp, mệnh giá, ...)
type Variation struct {
	ID            string  `json:"id" bson:"id"`                                                   // ID biến thể
	Name          string  `json:"name" bson:"name"`                                               // Tên biến thể
	Price         float64 `json:"price" bson:"price"`                                             // Giá bán
	OriginalPrice float64 `json:"original_price,omitempty" bson:"original_price,omitempty"`       // Giá gốc (để hiển thị giảm giá)
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`             // Mô tả biến thể
}

// CustomField là trường thông tin khách phải nhập khi đặt hàng (UID, server, ...)
type CustomField struct {
	ID          string `json:"id" bson:"id"`                                       // ID trường
	Label       string `json:"label" bson:"label"`                                 // Nhãn hiển thị
	Placeholder string `json:"placeholder,omitempty" bson:"placeholder,omitempty"` // Placeholder
	Required    bool   `json:"required" bson:"required"`                           // Bắt buộc nhập hay không
}

// Product lưu sản phẩm của cửa hàng
type Product struct {
	ID           string        `json:"id" bson:"_id"`                                        // ID sản phẩm
	Name         string        `json:"name" bson:"name"`                                     // Tên sản phẩm
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`   // Mô tả
	ImageURL     string        `json:"image_url,omitempty" bson:"image_url,omitempty"`       // Ảnh đại diện
	CategoryID   string        `json:"category_id,omitempty" bson:"category_id,omitempty" index:"single"` // Danh mục
	Variations   []Variation   `json:"variations" bson:"variations"`                         // Các biến thể
	Tags         []string      `json:"tags,omitempty" bson:"tags,omitempty"`                 // Nhãn (hot, new, ...)
	SortOrder    int           `json:"sort_order" bson:"sort_order" index:"single"`          // Thứ tự hiển thị
	CustomFields []CustomField `json:"custom_fields,omitempty" bson:"custom_fields,omitempty"` // Trường nhập khi đặt hàng
	IsActive     bool          `json:"is_active" bson:"is_active"`                           // Đang bán hay ẩn
	IsSoldOut    bool          `json:"is_sold_out" bson:"is_sold_out"`                       // Hết hàng
	CreatedAt    string        `json:"created_at" bson:"created_at"`                         // Thời gian tạo (ISO 8601)
}
