package textfile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const lorem = `Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod
tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam,
quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo
consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse
cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non
proident, sunt in culpa qui officia deserunt mollit anim id est laborum.
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "lorem.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	name := writeFile(t, lorem)
	r, err := Load(context.Background(), name, 32)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lorem, r.String()); diff != "" {
		t.Errorf("loaded text differs (-want +got):\n%s", diff)
	}
	if want := (len(lorem) + 31) / 32; r.FragmentCount() != want {
		t.Errorf("expected %d fragments, have %d", want, r.FragmentCount())
	}
}

func TestLoadDefaultFragmentSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	content := strings.Repeat(lorem, 20)
	name := writeFile(t, content)
	r, err := Load(context.Background(), name, 0, WithReaders(2))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(content, r.String()); diff != "" {
		t.Errorf("loaded text differs (-want +got):\n%s", diff)
	}
	if want := (len(content) + 255) / 256; r.FragmentCount() != want {
		t.Errorf("expected %d fragments of 256 bytes, have %d", want, r.FragmentCount())
	}
}

func TestLoadConfiguredFragmentSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	gconf.Initialize(testconfig.Conf{ConfigFragSize: "100"})
	defer gconf.Initialize(testconfig.Conf{})
	//
	name := writeFile(t, lorem)
	r, err := Load(context.Background(), name, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := (len(lorem) + 99) / 100; r.FragmentCount() != want {
		t.Errorf("expected %d fragments of configured size, have %d", want, r.FragmentCount())
	}
	if r.String() != lorem {
		t.Errorf("loaded text differs")
	}
}

func TestLoadProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	name := writeFile(t, lorem)
	var calls, last, total int
	r, err := Load(context.Background(), name, 64, WithProgress(func(loaded, n int) {
		calls++
		last, total = loaded, n
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := r.FragmentCount()
	if calls != want || last != want || total != want {
		t.Errorf("expected %d progress calls, have %d (last=%d/%d)", want, calls, last, total)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r, err := Load(context.Background(), writeFile(t, ""), 0)
	if err != nil || !r.IsVoid() {
		t.Errorf("expected void rope for empty file, have %q (err=%v)", r, err)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), 0); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, have %v", err)
	}
	if _, err := Load(context.Background(), t.TempDir(), 0); err == nil {
		t.Errorf("expected error for directory")
	}
}

func TestFragmentSize(t *testing.T) {
	for _, tc := range []struct {
		size, requested, fragSize int64
	}{
		{10, 0, 10},
		{10, 100, 10},
		{500, 0, 64},
		{500, 20, 20},
		{5000, 0, 256},
		{50000, 0, 512},
		{500000, 0, 2048},
		{5000000, 0, 6144},
	} {
		if fs := fragmentSize(tc.size, tc.requested); fs != tc.fragSize {
			t.Errorf("fragment size for %d/%d: expected %d, have %d", tc.size, tc.requested, tc.fragSize, fs)
		}
	}
}

func TestLoadCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	name := writeFile(t, strings.Repeat(lorem, 50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	r, err := Load(ctx, name, 16, WithProgress(func(int, int) { calls++ }))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, have %v", err)
	}
	if !r.IsVoid() {
		t.Errorf("expected void rope for cancelled load, have length %d", r.Len())
	}
	if calls != 0 {
		t.Errorf("expected no progress for cancelled load, have %d calls", calls)
	}
}

func TestReadTruncatedFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	name := writeFile(t, lorem)
	tf, err := openFile(name)
	if err != nil {
		t.Fatal(err)
	}
	defer tf.file.Close()
	tf.fragSize = 32
	tf.count = int((tf.info.Size() + 31) / 32)
	if err := os.Truncate(name, 40); err != nil {
		t.Fatal(err)
	}
	if frag := tf.read(0); frag.err != nil || frag.text != lorem[:32] {
		t.Errorf("expected first fragment to be intact, have %q (err=%v)", frag.text, frag.err)
	}
	for _, i := range []int{1, 2} { // partially and completely truncated
		if frag := tf.read(i); !errors.Is(frag.err, io.ErrUnexpectedEOF) {
			t.Errorf("fragment %d: expected io.ErrUnexpectedEOF, have %v", i, frag.err)
		}
	}
}

func TestCollectReportsReadError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	frags := make(chan interface{}, 2)
	frags <- fragment{index: 1, text: "world"}
	frags <- fragment{index: 0, err: io.ErrUnexpectedEOF}
	if _, err := collect(context.Background(), frags, 2); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected read error to be reported, have %v", err)
	}
	close(frags)
	ch := make(chan interface{})
	close(ch)
	if _, err := collect(context.Background(), ch, 1); err == nil {
		t.Errorf("expected error for closed broadcast")
	}
}

func TestCollectAndProgressCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := collect(ctx, make(chan interface{}), 3); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, have %v", err)
	}
	calls := 0
	reportProgress(ctx, make(chan interface{}), 3, func(int, int) { calls++ })
	if calls != 0 {
		t.Errorf("expected no progress calls after cancellation, have %d", calls)
	}
}
