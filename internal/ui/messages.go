package ui

// MaxMessages is how many console lines are kept.
const MaxMessages = 20

// MessageLog keeps the most recent narrative messages, newest first.
type MessageLog struct {
	entries []string
}

// Add records messages in order; the last one becomes the newest.
func (l *MessageLog) Add(messages ...string) {
	for _, m := range messages {
		if m == "" {
			continue
		}
		l.entries = append([]string{m}, l.entries...)
		if len(l.entries) > MaxMessages {
			l.entries = l.entries[:MaxMessages]
		}
	}
}

// Recent returns up to n messages, newest first.
func (l *MessageLog) Recent(n int) []string {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[:n]
}

// Len returns the number of kept messages.
func (l *MessageLog) Len() int {
	return len(l.entries)
}
