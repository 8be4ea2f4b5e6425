package progrock

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/symup/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

type streamKey struct {
	vertex string
	stream progrock.LogStream
}

// LogWriter is a progrock.Writer that replays vertex output through the logger at debug level.
// Lines are prefixed with the vertex name; partial lines are held until a newline, completion or Close.
type LogWriter struct {
	logger ports.Logger

	mu      sync.Mutex
	names   map[string]string
	partial map[streamKey][]byte
	done    map[string]bool
}

// NewLogWriter creates a LogWriter reporting to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:  logger,
		names:   make(map[string]string),
		partial: make(map[streamKey][]byte),
		done:    make(map[string]bool),
	}
}

// WriteStatus consumes one status update.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		key := streamKey{vertex: l.Vertex, stream: l.Stream}
		buf := append(w.partial[key], l.Data...)
		for {
			i := bytes.IndexByte(buf, '\n')
			if i < 0 {
				break
			}
			w.emit(l.Vertex, string(buf[:i]))
			buf = buf[i+1:]
		}
		if len(buf) == 0 {
			delete(w.partial, key)
			continue
		}
		w.partial[key] = slices.Clone(buf)
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true
		w.flush(v.Id)
		if v.Error != nil {
			w.logger.Debug(fmt.Sprintf("%s: failed: %s", v.Name, *v.Error))
			continue
		}
		w.logger.Debug(v.Name + ": done")
	}
	return nil
}

// Close emits any held partial lines.
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key := range w.partial {
		w.flush(key.vertex)
	}
	return nil
}

func (w *LogWriter) flush(vertex string) {
	for key, buf := range w.partial {
		if key.vertex != vertex {
			continue
		}
		w.emit(vertex, string(buf))
		delete(w.partial, key)
	}
}

func (w *LogWriter) emit(vertex, line string) {
	name, ok := w.names[vertex]
	if !ok {
		name = vertex
	}
	w.logger.Debug(name + ": " + line)
}
