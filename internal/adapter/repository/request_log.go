package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"automation-api/internal/domain"
)

// RequestLog appends one record per completed request to two independent
// sinks: a line-oriented log and a JSON-lines log. Appends are best-effort
// and write-once; there is no read or rotation path. Each record is a
// single O_APPEND write, so concurrent requests do not interleave records.
type RequestLog struct {
	linePath string
	jsonPath string
}

func NewRequestLog(dir string) (*RequestLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RequestLog{
		linePath: filepath.Join(dir, "requests.log"),
		jsonPath: filepath.Join(dir, "requests.jsonl"),
	}, nil
}

func (l *RequestLog) Append(e domain.LogEntry) error {
	line := fmt.Sprintf("[%s] ENDPOINT: %s | INPUT: %s | STATUS: %s\n",
		e.Time.Format("2006-01-02 15:04:05"), e.Endpoint, e.Input, e.Status)
	if err := appendLine(l.linePath, []byte(line)); err != nil {
		return err
	}

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return appendLine(l.jsonPath, append(b, '\n'))
}

func appendLine(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
