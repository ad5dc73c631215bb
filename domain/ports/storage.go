package ports

import "io"

// StoragePort คือ interface สำหรับเก็บ avatar
// ทำให้เปลี่ยน storage provider ได้ง่าย (local, s3)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage แล้วคืน URL ที่เข้าถึงได้
	UploadFile(file io.Reader, size int64, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
