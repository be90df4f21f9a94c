package models

// SiteSettings lưu cấu hình chung của site dưới dạng schemaless.
// Singleton document với _id = "main", các key còn lại do admin tự định nghĩa.
type SiteSettings map[string]interface{}
