package models

// SyncConfig lưu cấu hình đồng bộ Trustpilot dạng key/value trong
// collection trustpilot_config. Các key đang dùng: business_unit_id,
// last_sync. Document chỉ được upsert, không bao giờ xóa.
type SyncConfig struct {
	Key   string `json:"key" bson:"key" index:"unique"` // Tên cấu hình
	Value string `json:"value" bson:"value"`            // Giá trị cấu hình
}
