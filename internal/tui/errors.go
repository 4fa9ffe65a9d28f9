package tui

import (
	"errors"
	"strings"

	"github.com/ndanilov/shelf-viewer/internal/adapter"
)

var ErrUserQuit = errors.New("вышел из программы")

// humanizeServerError strips wrapper prefixes so that form error lines show
// the server's own message (validation text, auth text) or a short
// unavailability notice.
func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Неверный логин или пароль"
	}

	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 && idx+2 < len(msg) {
		msg = msg[idx+2:]
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return "Сервер недоступен"
	}

	return msg
}
