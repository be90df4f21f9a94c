package models

// PaymentMethod lưu phương thức thanh toán hiển thị cho khách
type PaymentMethod struct {
	ID        string `json:"id" bson:"_id"`                               // ID phương thức
	Name      string `json:"name" bson:"name"`                            // Tên phương thức (eSewa, Khalti, ...)
	ImageURL  string `json:"image_url,omitempty" bson:"image_url,omitempty"` // Logo
	IsActive  bool   `json:"is_active" bson:"is_active"`                  // Hiển thị cho khách hay không
	SortOrder int    `json:"sort_order" bson:"sort_order" index:"single"` // Thứ tự hiển thị
}
