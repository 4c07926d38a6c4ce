package server

import (
	"Portfolio/handler"
)

type Handlers struct {
	Guestbook *handler.Guestbook
	Like      *handler.Like
	Recommend *handler.Recommend
	Health    *handler.Health
}
