// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков.
package response

const (
	// StatusOK ставится в успешный ответ.
	StatusOK = "OK"
	// StatusError ставится в ответ с ошибкой.
	StatusError = "Error"
)

// Response описывает служебный JSON‑ответ сервера.
// Поле Status: статус запроса ("OK" или "Error").
// Поле Error: текст ошибки (опционально, при неуспехе).
// Поле Data: данные ответа (опционально, при успехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse описывает структуру ошибки для Swagger-документации.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"could not save request"`
}

// EmptyResponse сериализуется в пустой JSON-объект, которым отвечают на запросы без данных.
type EmptyResponse struct{}

// Empty возвращает пустой объект `{}`.
func Empty() EmptyResponse {
	return EmptyResponse{}
}

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}
