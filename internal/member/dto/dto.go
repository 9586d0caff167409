package dto

import "github.com/devkeeb/gearlog/internal/model"

type LoginResponse struct {
	Token  string        `json:"token"`
	Member *model.Member `json:"member"`
}
