// Package storage описывает общие ошибки хранилищ записей запросов.
// Реализации лежат в подпакетах postgresql и memory.
package storage

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запись с таким query id отсутствует.
	ErrRequestNotFound = errors.New("request not found")
	// ErrRequestExists возвращается при повторной записи того же query id.
	ErrRequestExists = errors.New("request already exists")
)
