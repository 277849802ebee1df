package events

import "errors"

var (
	// ErrEncodeEvent возвращается при ошибке сериализации события
	ErrEncodeEvent = errors.New("events: failed to encode event")

	// ErrPublish возвращается при ошибке публикации в Redis
	ErrPublish = errors.New("events: failed to publish event")
)
