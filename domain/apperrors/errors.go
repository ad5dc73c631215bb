package apperrors

import (
	"errors"
	"fmt"
)

// Kind บอกประเภทของ domain error เพื่อ map เป็น HTTP status ที่ boundary
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindStorage
)

// Error คือ domain error ที่ถือ Kind ติดตัวไปจนถึง handler
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string, details any) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Storage wrap persistence error ที่ไม่เข้าประเภทอื่น (ตามสัญญา rollback ทั้ง transaction)
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "unexpected persistence failure", Err: err}
}

// KindOf ดึง Kind จาก error chain; error ที่ไม่รู้จักถือเป็น KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound shortcut ที่ใช้บ่อยใน service layer
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
