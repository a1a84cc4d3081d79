package headlessterm

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// NotificationPayload carries a parsed OSC 9 / OSC 99 desktop notification
// request. Fields beyond PayloadType and Data follow the kitty desktop
// notifications protocol (id, done, encoding, actions, ...); terminals that
// only support the simpler OSC 9 form leave most fields zero.
type NotificationPayload struct {
	ID          string
	Done        bool
	PayloadType string
	Encoding    string
	Actions     []string
	TrackClose  bool
	Timeout     int
	AppName     string
	Type        string
	IconName    string
	IconCacheID string
	Sound       string
	Urgency     int
	Occasion    string
	Data        []byte
}

// NotificationProvider handles desktop notification requests (OSC 9, OSC 99).
// Notify may return a response string (e.g. a query reply) to be written back
// to the host; an empty string means no response is sent.
type NotificationProvider interface {
	Notify(payload *NotificationPayload) string
}

// NoopNotification discards all notification requests.
type NoopNotification struct{}

func (NoopNotification) Notify(payload *NotificationPayload) string { return "" }

var _ NotificationProvider = NoopNotification{}

// WithNotification sets the handler for desktop notification requests.
func WithNotification(p NotificationProvider) Option {
	return func(t *Terminal) {
		t.notificationProvider = p
	}
}

// NotificationProvider returns the current notification handler.
func (t *Terminal) NotificationProvider() NotificationProvider {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.notificationProvider
}

// SetNotificationProvider replaces the notification handler at runtime.
func (t *Terminal) SetNotificationProvider(p NotificationProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notificationProvider = p
}

// DesktopNotification dispatches a parsed notification payload to the
// configured provider and writes back any response it returns.
func (t *Terminal) DesktopNotification(payload *NotificationPayload) {
	if t.middleware != nil && t.middleware.DesktopNotification != nil {
		t.middleware.DesktopNotification(payload, t.desktopNotificationInternal)
		return
	}
	t.desktopNotificationInternal(payload)
}

func (t *Terminal) desktopNotificationInternal(payload *NotificationPayload) {
	t.mu.RLock()
	provider := t.notificationProvider
	t.mu.RUnlock()

	if provider == nil {
		return
	}

	response := provider.Notify(payload)
	if response != "" {
		t.writeResponseString(response)
	}
}

// parseOSC99 parses the kitty desktop-notification wire format: a
// semicolon-separated list of key=value metadata fields followed by the
// payload (params[len-1]), e.g. "i=5;d=0;p=title;My Title". Recognized
// keys: i (id), d (done), p (payload type), e (payload encoding, "1"=base64),
// a (comma-separated actions), c (track close), w (timeout ms), u (urgency),
// o (occasion), n (app name), t (type), icon-name, icon-cache-id, sound.
func (t *Terminal) parseOSC99(fields [][]byte) {
	if len(fields) == 0 {
		return
	}

	payload := &NotificationPayload{Done: true}
	var rawData []byte

	for i, f := range fields {
		if i == len(fields)-1 {
			rawData = f
			continue
		}
		kv := string(f)
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			continue
		}
		key, val := kv[:eq], kv[eq+1:]
		switch key {
		case "i":
			payload.ID = val
		case "d":
			payload.Done = val != "0"
		case "p":
			payload.PayloadType = val
		case "e":
			payload.Encoding = val
		case "a":
			if val != "" {
				payload.Actions = strings.Split(val, ",")
			}
		case "c":
			payload.TrackClose = val == "1"
		case "w":
			if n, err := strconv.Atoi(val); err == nil {
				payload.Timeout = n
			}
		case "u":
			if n, err := strconv.Atoi(val); err == nil {
				payload.Urgency = n
			}
		case "o":
			payload.Occasion = val
		case "n":
			payload.AppName = val
		case "t":
			payload.Type = val
		case "icon-name":
			payload.IconName = val
		case "icon-cache-id":
			payload.IconCacheID = val
		case "sound":
			payload.Sound = val
		}
	}

	if payload.Encoding == "1" {
		if decoded, err := base64.StdEncoding.DecodeString(string(rawData)); err == nil {
			payload.Data = decoded
		}
	} else {
		payload.Data = rawData
	}

	t.DesktopNotification(payload)
}
