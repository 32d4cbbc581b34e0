/*
Package sdrecorder provides an introspective sink.  All emitted lines
are decoded and saved to memory so tests can examine them.  Memory is
only freed when the recorder is garbage collected.
*/
package sdrecorder

import (
	"encoding/json"
	"sync"

	"github.com/sdlog/sdlog/sdbytes"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
	"github.com/muir/list"
	"github.com/pkg/errors"
)

var _ sdbytes.BytesWriter = &Logger{}

func New() *Logger {
	return &Logger{
		id: "sdrecorder-" + uuid.New().String(),
	}
}

type Logger struct {
	lock  sync.Mutex
	id    string
	Lines []*Line
}

// Line is one decoded log document.
type Line struct {
	Severity string
	Logger   string
	Time     string
	Data     map[string]interface{} // the full decoded document
	text     string
}

func (line *Line) Text() string { return line.text }

func (log *Logger) ID() string     { return log.id }
func (log *Logger) Buffered() bool { return false }
func (log *Logger) Close()         {}

func (log *Logger) Line(b []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return errors.Wrapf(err, "sdrecorder could not decode line '%s'", string(b))
	}
	line := &Line{
		Data: data,
		text: string(b),
	}
	line.Severity, _ = data["severity"].(string)
	line.Logger, _ = data["logger"].(string)
	line.Time, _ = data["time"].(string)
	log.lock.Lock()
	defer log.lock.Unlock()
	log.Lines = append(log.Lines, line)
	return nil
}

// Snapshot returns an independent deep copy of the recorded lines so
// callers can examine them while logging continues.
func (log *Logger) Snapshot() []*Line {
	log.lock.Lock()
	defer log.lock.Unlock()
	lines := list.Copy(log.Lines)
	for i, line := range lines {
		copied := *line
		copied.Data = deepcopy.Copy(line.Data).(map[string]interface{})
		lines[i] = &copied
	}
	return lines
}
