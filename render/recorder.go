package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/arena/component"
)

var ErrRecorderClosed = errors.New("recorder closed")

// Frame is one recorded tick
type Frame struct {
	Tick  uint64                 `msgpack:"t"`
	Infos []component.RenderInfo `msgpack:"i"`
}

// Recorder appends frames to a msgpack stream, one value per frame
type Recorder struct {
	mu     sync.Mutex
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
	closed bool
}

// NewRecorder writes to w; Close also closes w when it is an io.Closer
func NewRecorder(w io.Writer) *Recorder {
	r := &Recorder{enc: msgpack.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// Record encodes one frame
func (r *Recorder) Record(tick uint64, infos []component.RenderInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	if err := r.enc.Encode(Frame{Tick: tick, Infos: infos}); err != nil {
		return fmt.Errorf("record tick %d: %w", tick, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close stops recording; further Record calls fail
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// ReadFrames decodes every frame in a recorded stream
// A stream ending inside a frame yields io.ErrUnexpectedEOF with the frames read so far
func ReadFrames(rd io.Reader) ([]Frame, error) {
	br := bufio.NewReader(rd)
	dec := msgpack.NewDecoder(br)
	var frames []Frame
	for {
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			return frames, nil
		}
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return frames, fmt.Errorf("frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}
