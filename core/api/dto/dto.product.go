package dto

// VariationInput là input cho một biến thể sản phẩm
type VariationInput struct {
	ID            string  `json:"id,omitempty"`             // ID biến thể (sinh mới nếu rỗng)
	Name          string  `json:"name" validate:"required"` // Tên biến thể
	Price         float64 `json:"price"`                    // Giá bán
	OriginalPrice float64 `json:"original_price,omitempty"` // Giá gốc
	Description   string  `json:"description,omitempty"`    // Mô tả
}

// CustomFieldInput là input cho một trường nhập khi đặt hàng
type CustomFieldInput struct {
	ID          string `json:"id,omitempty"`              // ID trường (sinh mới nếu rỗng)
	Label       string `json:"label" validate:"required"` // Nhãn hiển thị
	Placeholder string `json:"placeholder,omitempty"`     // Placeholder
	Required    bool   `json:"required"`                  // Bắt buộc nhập
}

// ProductCreateInput là input để tạo sản phẩm
type ProductCreateInput struct {
	Name         string             `json:"name" validate:"required,no_xss"` // Tên sản phẩm
	Description  string             `json:"description"`                     // Mô tả
	ImageURL     string             `json:"image_url"`                       // Ảnh đại diện
	CategoryID   string             `json:"category_id"`                     // Danh mục
	Variations   []VariationInput   `json:"variations"`                      // Các biến thể
	Tags         []string           `json:"tags"`                            // Nhãn
	SortOrder    int                `json:"sort_order"`                      // Thứ tự hiển thị (tự gán nếu 0)
	CustomFields []CustomFieldInput `json:"custom_fields"`                   // Trường nhập khi đặt hàng
	IsActive     bool               `json:"is_active"`                       // Đang bán
	IsSoldOut    bool               `json:"is_sold_out"`                     // Hết hàng
}

// ProductReorderInput là input để sắp xếp lại thứ tự sản phẩm
type ProductReorderInput struct {
	ProductIds []string `json:"product_ids" validate:"required"` // Danh sách id theo thứ tự mới
}

// CategoryCreateInput là input để tạo danh mục
type CategoryCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"` // Tên danh mục
}
