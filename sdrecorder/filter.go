package sdrecorder

import (
	"strings"
)

type LinePredicate struct {
	f    func(*Line) bool
	desc string
}

func (p LinePredicate) String() string { return p.desc }

func SeverityEquals(severity string) LinePredicate {
	return LinePredicate{
		f: func(line *Line) bool {
			return line.Severity == severity
		},
		desc: "severity equals " + severity,
	}
}

func LoggerEquals(logger string) LinePredicate {
	return LinePredicate{
		f: func(line *Line) bool {
			return line.Logger == logger
		},
		desc: "logger equals " + logger,
	}
}

func HasKey(key string) LinePredicate {
	return LinePredicate{
		f: func(line *Line) bool {
			_, ok := line.Data[key]
			return ok
		},
		desc: "has key " + key,
	}
}

func TextContains(text string) LinePredicate {
	return LinePredicate{
		f: func(line *Line) bool {
			return strings.Contains(line.Text(), text)
		},
		desc: "text contains " + text,
	}
}

func (log *Logger) FindLines(predicates ...LinePredicate) []*Line {
	log.lock.Lock()
	defer log.lock.Unlock()
	var found []*Line
Line:
	for _, line := range log.Lines {
		for _, predicate := range predicates {
			if !predicate.f(line) {
				continue Line
			}
		}
		found = append(found, line)
	}
	return found
}

func (log *Logger) CountLines(predicates ...LinePredicate) int {
	return len(log.FindLines(predicates...))
}
