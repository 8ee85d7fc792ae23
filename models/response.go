package models

import "time"

type TeacherListResponse struct {
	Data     []string  `json:"data"`
	Default  string    `json:"default"`
	Loading  bool      `json:"loading"`
	LoadedAt time.Time `json:"loadedAt,omitempty"`
}

type RefreshResponse struct {
	Message  string    `json:"message"`
	Teachers int       `json:"teachers"`
	LoadedAt time.Time `json:"loadedAt"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
