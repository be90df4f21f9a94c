package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// logQueueSize là số entry tối đa chờ ghi trước khi entry mới bị bỏ
const logQueueSize = 1000

// asyncHook ghi log qua một goroutine riêng để file I/O chậm
// không chặn request handling. Hàng đợi đầy thì entry mới bị bỏ.
type asyncHook struct {
	writers []io.Writer
	queue   chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// newAsyncHook tạo hook ghi bất đồng bộ vào các writer (file, stdout)
func newAsyncHook(writers []io.Writer) *asyncHook {
	hook := &asyncHook{
		writers: writers,
		queue:   make(chan *logrus.Entry, logQueueSize),
	}

	hook.wg.Add(1)
	go hook.drain()

	return hook
}

func (h *asyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào hàng đợi, không bao giờ block.
// Sau khi hook đóng, entry được ghi thẳng vào writers.
func (h *asyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		h.write(data)
		return nil
	}

	select {
	case h.queue <- entry:
	default:
		// Hàng đợi đầy, bỏ entry. Không log được ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

// drain ghi lần lượt các entry trong hàng đợi ra writers
func (h *asyncHook) drain() {
	defer h.wg.Done()

	for entry := range h.queue {
		data, err := h.format(entry)
		if err != nil {
			continue
		}
		h.write(data)
	}
}

// format render entry bằng formatter của logger gốc
func (h *asyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// write ghi ra tất cả writers, một writer lỗi không chặn các writer còn lại
func (h *asyncHook) write(data []byte) {
	for _, writer := range h.writers {
		_, _ = writer.Write(data)
	}
}

// Close đóng hàng đợi và đợi các entry còn lại được ghi hết
func (h *asyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.queue)
	h.wg.Wait()
	return nil
}
