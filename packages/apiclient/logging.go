package apiclient

import (
	"fmt"
	"io"
	"os"

	"github.com/AndreaMinato/ApiClient/packages/transport"
	"github.com/fatih/color"
)

// LogInterceptor implements all three interceptor interfaces and writes one
// line per event: outgoing method, incoming status with duration, and
// failures. Install it on whichever slots should be observed.
type LogInterceptor struct {
	writer io.Writer
}

type LogOption func(*LogInterceptor)

func NewLogInterceptor(opts ...LogOption) *LogInterceptor {
	l := &LogInterceptor{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func WithLogWriter(w io.Writer) LogOption {
	return func(l *LogInterceptor) {
		l.writer = w
	}
}

func WithNoColor(nc bool) LogOption {
	return func(l *LogInterceptor) {
		if nc {
			color.NoColor = true
		}
	}
}

func (l *LogInterceptor) BeforeSend(opts RequestOptions, _ CallOptions) RequestOptions {
	fmt.Fprintf(l.writer, "%s %s\n", color.CyanString("->"), opts.Method)
	return opts
}

func (l *LogInterceptor) AfterReceive(_ RequestOptions, _ CallOptions, raw *transport.Response) {
	fmt.Fprintf(l.writer, "%s %s (%dms)\n", color.GreenString("<-"), raw.Status, raw.DurationMs())
}

func (l *LogInterceptor) OnError(opts RequestOptions, _ CallOptions, raw *transport.Response, err error) {
	if raw.StatusCode != 0 {
		fmt.Fprintf(l.writer, "%s %s %s\n", color.RedString("!!"), opts.Method, color.RedString(raw.Status))
		return
	}
	fmt.Fprintf(l.writer, "%s %s %s\n", color.RedString("!!"), opts.Method, err)
}
