package loader

import (
	"log"
	"sync"
)

// NoticeLevel is the severity shown next to a notice
type NoticeLevel string

const (
	LevelSuccess NoticeLevel = "success"
	LevelInfo    NoticeLevel = "info"
	LevelError   NoticeLevel = "error"
)

// Notice is a human-readable message about the load, delivered beside the result
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// String renders the notice the way it is stored in load history
func (n Notice) String() string {
	return string(n.Level) + ": " + n.Message
}

// NoticeSink receives notices as they are emitted
type NoticeSink interface {
	Notify(Notice)
}

// SinkFunc adapts a function to NoticeSink
type SinkFunc func(Notice)

func (f SinkFunc) Notify(n Notice) { f(n) }

// NoticeLog collects notices in emission order
type NoticeLog struct {
	mu      sync.Mutex
	notices []Notice
}

func (l *NoticeLog) Notify(n Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, n)
}

// Notices returns a copy of everything collected so far
func (l *NoticeLog) Notices() []Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notice, len(l.notices))
	copy(out, l.notices)
	return out
}

// LogSink writes notices to the standard logger
var LogSink = SinkFunc(func(n Notice) {
	log.Printf("[Loader] %s", n)
})

// Tee fans a notice out to every non-nil sink
func Tee(sinks ...NoticeSink) NoticeSink {
	return SinkFunc(func(n Notice) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(n)
			}
		}
	})
}
