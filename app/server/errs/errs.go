// Package errs classifies failures for the HTTP surface.
//
// Each pipeline stage wraps its internal error into an Error carrying the
// status code and the message safe to show to the client; the centralized
// responder logs Err and writes Public.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int    // HTTP 状态码
	Public string // 返回给客户端的信息
	Err    error  // 内部错误，只记录日志
}

func New(status int, public string, err error) *Error {
	return &Error{
		Status: status,
		Public: public,
		Err:    err,
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d %s", e.Status, e.Public)
	}
	return fmt.Sprintf("%d %s: %v", e.Status, e.Public, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// From 提取错误链上的 *Error ，不存在时视为内部错误
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(http.StatusInternalServerError, GenericMessage, err)
}

const GenericMessage = "Something went wrong :("

func BadRequest(public string, err error) *Error {
	return New(http.StatusBadRequest, public, err)
}

func Unauthorized(public string, err error) *Error {
	return New(http.StatusUnauthorized, public, err)
}

func Forbidden(public string, err error) *Error {
	return New(http.StatusForbidden, public, err)
}

func NotFound(public string, err error) *Error {
	return New(http.StatusNotFound, public, err)
}

func Conflict(public string, err error) *Error {
	return New(http.StatusConflict, public, err)
}

func Internal(public string, err error) *Error {
	return New(http.StatusInternalServerError, public, err)
}
