package guard

import (
	"context"
	"io"
	"sync"
	"time"
)

// DefaultReadTimeout bounds how long the guard waits for the stop payload.
const DefaultReadTimeout = 5 * time.Second

// ReadPayload reads r until EOF or until ctx is done, whichever comes
// first. On timeout it returns whatever bytes were accumulated so far; it
// never blocks indefinitely and never returns an error. The reading
// goroutine is abandoned on timeout, which is fine for a short-lived
// process.
func ReadPayload(ctx context.Context, r io.Reader) []byte {
	var mu sync.Mutex
	var buf []byte

	done := make(chan struct{})
	go func() {
		defer close(done)
		chunk := make([]byte, 4096)
		for {
			n, err := r.Read(chunk)
			if n > 0 {
				mu.Lock()
				buf = append(buf, chunk[:n]...)
				mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}

	mu.Lock()
	defer mu.Unlock()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}
