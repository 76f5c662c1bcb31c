package dispatch

import "errors"

var (
	// ErrPublish возвращается при ошибке публикации сообщения в шину
	ErrPublish = errors.New("dispatch: failed to publish message")
)
