package executil

import (
	"bytes"
)

// cappedBuffer captures command output up to a size limit. Writes past
// the limit are accepted and discarded so the producing process never
// sees a write error.
type cappedBuffer struct {
	buffer    bytes.Buffer
	maxBytes  int64
	truncated bool
}

func newCappedBuffer(maxBytes int64) *cappedBuffer {
	return &cappedBuffer{maxBytes: maxBytes}
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	remaining := c.maxBytes - int64(c.buffer.Len())
	if remaining <= 0 {
		c.truncated = true
		return len(p), nil
	}

	toWrite := p
	if int64(len(toWrite)) > remaining {
		toWrite = toWrite[:remaining]
		c.truncated = true
	}

	if _, err := c.buffer.Write(toWrite); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *cappedBuffer) Bytes() []byte {
	return c.buffer.Bytes()
}

func (c *cappedBuffer) Truncated() bool {
	return c.truncated
}
