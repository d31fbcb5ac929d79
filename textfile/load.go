package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/gconf"
)

// ConfigFragSize is the global configuration key for the default fragment size
// in bytes. It is consulted if a client does not pass a fragment size to Load.
const ConfigFragSize = "rope.fragsize"

// Some constants for fragment size defaults
const (
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

const defaultReaders = 4

// fragment is the message broadcast for every fragment read from the file.
type fragment struct {
	index int    // position of this fragment within the sequence of fragments
	text  string // content of the fragment
	err   error  // I/O error, if any
}

// textFile represents an OS file which will be loaded as a rope.
type textFile struct {
	path     string         // file name
	info     os.FileInfo    // result from Stat(path)
	file     *os.File       // file handle
	fragSize int64          // length of fragments in bytes
	count    int            // number of fragments
	cast     *caster.Caster // broadcaster for loaded fragments
}

// Option configures a call to Load.
type Option func(*options)

type options struct {
	readers  int
	progress func(loaded, total int)
}

// WithProgress sets a callback which will be called after every fragment read,
// with the number of fragments loaded so far and the total number of fragments.
// The callback is called from a separate goroutine, but calls are never
// concurrent. All calls have been made when Load returns.
func WithProgress(f func(loaded, total int)) Option {
	return func(opts *options) {
		opts.progress = f
	}
}

// WithReaders sets the number of goroutines reading fragments concurrently.
// Values < 1 are ignored.
func WithReaders(n int) Option {
	return func(opts *options) {
		if n > 0 {
			opts.readers = n
		}
	}
}

// Load reads a file, which should be a text file, and loads it as a rope.
// Clients may indicate a recommended fragment length. If fragSize is 0, Load will
// consult the global configuration (key ConfigFragSize) and fall back to a
// size dependent default.
//
// Load returns when the file is read completely or ctx is cancelled.
func Load(ctx context.Context, name string, fragSize int64, opts ...Option) (rope.Rope, error) {
	o := options{readers: defaultReaders}
	for _, opt := range opts {
		opt(&o)
	}
	tf, err := openFile(name)
	if err != nil {
		return rope.Rope{}, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	if size == 0 {
		return rope.Rope{}, nil
	}
	tf.fragSize = fragmentSize(size, fragSize)
	tf.count = int((size + tf.fragSize - 1) / tf.fragSize)
	tracer().Debugf("loading %s: %d bytes in %d fragments of %d bytes",
		name, size, tf.count, tf.fragSize)
	//
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	tf.cast = caster.New(ctx)
	defer tf.cast.Close()
	frags, ok := tf.cast.Sub(ctx, uint(tf.count))
	if !ok {
		return rope.Rope{}, subscriptionError(ctx, "fragments", name)
	}
	var observers sync.WaitGroup
	if o.progress != nil {
		progress, ok := tf.cast.Sub(ctx, uint(tf.count))
		if !ok {
			return rope.Rope{}, subscriptionError(ctx, "progress", name)
		}
		observers.Add(1)
		go func() {
			defer observers.Done()
			reportProgress(ctx, progress, tf.count, o.progress)
		}()
	}
	readers := startReaders(ctx, tf, o.readers)
	texts, err := collect(ctx, frags, tf.count)
	if err != nil {
		cancel() // stop readers and observers
		readers.Wait()
		observers.Wait()
		tracer().Errorf("loading %s: %v", name, err)
		return rope.Rope{}, err
	}
	readers.Wait()
	observers.Wait()
	b := rope.NewBuilder()
	for _, text := range texts {
		if err = b.AppendString(text); err != nil {
			return rope.Rope{}, err
		}
	}
	return b.Rope(), nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

// subscriptionError reports a failed subscription to the broadcaster, which
// happens if ctx has been cancelled.
func subscriptionError(ctx context.Context, what, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("cannot subscribe to %s of %s", what, name)
}

// fragmentSize determines the length of fragments for a file of the given size.
func fragmentSize(size int64, requested int64) int64 {
	if requested <= 0 && gconf.IsSet(ConfigFragSize) {
		requested = int64(gconf.GetInt(ConfigFragSize))
	}
	if requested > 0 {
		return min(requested, size)
	}
	switch {
	case size < 64:
		return size
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return 2048
	}
	return 6144
}

// startReaders starts n goroutines reading the fragments of tf and publishing
// them to tf.cast.
func startReaders(ctx context.Context, tf *textFile, n int) *sync.WaitGroup {
	jobs := make(chan int, tf.count)
	for i := 0; i < tf.count; i++ {
		jobs <- i
	}
	close(jobs)
	var wg sync.WaitGroup
	for range min(n, tf.count) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				if !tf.cast.Pub(tf.read(i)) {
					return
				}
			}
		}()
	}
	return &wg
}

// read reads fragment number i from the file.
func (tf *textFile) read(i int) fragment {
	pos := int64(i) * tf.fragSize
	length := min(tf.fragSize, tf.info.Size()-pos)
	buf := make([]byte, length)
	cnt, err := tf.file.ReadAt(buf, pos)
	if err != nil && err != io.EOF {
		return fragment{index: i, err: fmt.Errorf("error loading text fragment at %d: %w", pos, err)}
	} else if int64(cnt) < length {
		return fragment{index: i, err: fmt.Errorf("not all bytes loaded for text fragment at %d: %w",
			pos, io.ErrUnexpectedEOF)}
	}
	return fragment{index: i, text: string(buf)}
}

// collect receives count fragments and returns their texts in file order.
func collect(ctx context.Context, frags <-chan interface{}, count int) ([]string, error) {
	texts := make([]string, count)
	for received := 0; received < count; {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case m, ok := <-frags:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("fragment broadcast closed after %d of %d fragments", received, count)
			}
			frag := m.(fragment)
			if frag.err != nil {
				return nil, frag.err
			}
			texts[frag.index] = frag.text
			received++
		}
	}
	return texts, nil
}

func reportProgress(ctx context.Context, ch <-chan interface{}, total int, f func(int, int)) {
	for loaded := 0; loaded < total; {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			if m.(fragment).err != nil {
				return
			}
			loaded++
			f(loaded, total)
		}
	}
}
