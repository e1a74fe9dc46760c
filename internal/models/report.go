// Package models содержит доменные структуры запроса статистики пользователя,
// сохраненной записи запроса и результата опроса прогресса.
package models

import "time"

// UserStatisticRequest содержит запрос статистики, присланный клиентом.
type UserStatisticRequest struct {
	UserID   string    `json:"userId" validate:"required"`
	TimeFrom time.Time `json:"timeFrom" validate:"required"`
	TimeTo   time.Time `json:"timeTo" validate:"required,gtfield=TimeFrom"`
}

// RequestData описывает сохраненную запись запроса. ID назначает хранилище,
// RequestLocalTime и QueryID назначает сервер при приеме запроса.
type RequestData struct {
	ID               int                  `json:"id"`
	UserData         UserStatisticRequest `json:"userData"`
	RequestLocalTime time.Time            `json:"requestLocalTime"`
	QueryID          string               `json:"queryId"`
}

// ResponseData содержит результат опроса прогресса по идентификатору запроса.
// Result заполняется только при Percent == 100, иначе отдается null.
type ResponseData struct {
	Query   string        `json:"query"`
	Percent int           `json:"percent"`
	Result  *UserInfoData `json:"result"`
}

// UserInfoData содержит итоговые данные по пользователю.
type UserInfoData struct {
	UserID      string `json:"userId"`
	CountSignIn string `json:"countSignIn"`
}

// SubmittedEvent публикуется после сохранения нового запроса.
type SubmittedEvent struct {
	QueryID     string    `json:"queryId"`
	UserID      string    `json:"userId"`
	TimeFrom    time.Time `json:"timeFrom"`
	TimeTo      time.Time `json:"timeTo"`
	RequestedAt time.Time `json:"requestedAt"`
}
