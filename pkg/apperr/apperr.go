// Package apperr berisi jenis-jenis kegagalan yang bisa dikembalikan inti
// aplikasi ke pemanggil. Semua kegagalan bersifat recoverable; hanya
// KindStoreUnavailable yang layak di-retry.
package apperr

import "errors"

type Kind int

const (
	KindInvalidArgument Kind = iota
	KindNotFound
	KindConflict
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidArgument(message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func StoreUnavailable(message string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: message, Err: err}
}

// KindOf mengembalikan jenis kegagalan dari err, atau false kalau err bukan
// *Error dari paket ini.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

// IsKind melaporkan apakah err punya jenis kegagalan tertentu.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
