package progress

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
)

const (
	// Known size: task name, percentage, bar, bytes received/total, speed
	sizedTemplate = `{{with string . "prefix"}}{{.}}{{end}}: {{percent . }} {{bar . }} {{counters . }} [{{speed . }}]`
	// Unknown size: task name, bytes received, speed
	unsizedTemplate = `{{with string . "prefix"}}{{.}}{{end}}: {{counters . }} [{{speed . }}]`
)

type Task struct {
	Bar *pb.ProgressBar
}

// NewTask starts a byte-counting bar on out. A negative total means the size
// is unknown.
func NewTask(name string, total int64, out io.Writer) (*Task, error) {
	tmpl := sizedTemplate
	if total < 0 {
		total = 0
		tmpl = unsizedTemplate
	}

	bar := pb.New64(total).Set("prefix", name).SetRefreshRate(time.Millisecond * 100)
	bar.Set(pb.Bytes, true)
	bar.SetTemplateString(tmpl)
	bar.SetWriter(out)

	bar.Start()

	if err := bar.Err(); err != nil {
		return nil, err
	}

	return &Task{Bar: bar}, nil
}

// Reader wraps r so reads advance the bar. Closing the returned reader
// finishes the bar.
func (t *Task) Reader(r io.Reader) io.ReadCloser {
	return t.Bar.NewProxyReader(r)
}

func (t *Task) Current() int64 {
	return t.Bar.Current()
}
