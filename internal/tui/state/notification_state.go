package state

// NotificationLevel is the severity of a board message
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// maxNotifications bounds the lines shown above the status bar
const maxNotifications = 4

// Notification is one message shown above the status bar
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState collects the messages produced by the last key press.
// Repeated messages are shown once and only the newest few are kept.
type NotificationState struct {
	notifications []Notification
}

func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add records a message unless the same one is already shown
func (s *NotificationState) Add(level NotificationLevel, message string) {
	n := Notification{Level: level, Message: message}
	for _, existing := range s.notifications {
		if existing == n {
			return
		}
	}
	s.notifications = append(s.notifications, n)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
}

func (s *NotificationState) Clear() {
	s.notifications = nil
}

func (s *NotificationState) All() []Notification {
	return s.notifications
}

func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Worst returns the highest level shown, LevelInfo when empty
func (s *NotificationState) Worst() NotificationLevel {
	worst := LevelInfo
	for _, n := range s.notifications {
		worst = max(worst, n.Level)
	}
	return worst
}
