package screen

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/playlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uiThread serializes dispatched functions like a single UI goroutine would
type uiThread struct {
	mu sync.Mutex
}

func (u *uiThread) dispatch(f func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f()
}

type testLogger struct {
	mu     sync.Mutex
	lines  []string
	errors []string
}

func (l *testLogger) Print(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLogger) Printf(s string, as ...interface{}) {
	l.Print(s)
}

func (l *testLogger) PrintError(source string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, source+": "+err.Error())
}

func (l *testLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

type call struct {
	name     string
	url      string
	metadata playlist.Metadata
	seconds  int
	dragging bool

	// screen state when the call was made
	index       int
	currentTime int
}

type fakePlayer struct {
	mu      sync.Mutex
	calls   []call
	pending []func()
	playing bool

	// lets SeekTo observe screen state at call time
	screen *PlaybackScreen
}

func (p *fakePlayer) record(c call) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, c)
}

func (p *fakePlayer) Play(url string, metadata playlist.Metadata) error {
	c := call{name: "play", url: url, metadata: metadata}
	if p.screen != nil {
		c.index = p.screen.SelectedIndex()
		c.currentTime = p.screen.CurrentTime()
	}
	p.record(c)
	return nil
}

func (p *fakePlayer) Pause() error {
	p.record(call{name: "pause"})
	return nil
}

func (p *fakePlayer) Stop() error {
	p.record(call{name: "stop"})
	return nil
}

func (p *fakePlayer) SeekTo(seconds int) error {
	c := call{name: "seek", seconds: seconds}
	if p.screen != nil {
		c.dragging = p.screen.IsDragging()
	}
	p.record(c)
	return nil
}

func (p *fakePlayer) IsPlaying(cb func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{name: "isPlaying"})
	p.pending = append(p.pending, cb)
}

// resolveProbes answers all outstanding IsPlaying probes
func (p *fakePlayer) resolveProbes() {
	p.mu.Lock()
	pending := p.pending
	p.pending = nil
	playing := p.playing
	p.mu.Unlock()

	if !playing {
		return
	}
	for _, cb := range pending {
		cb()
	}
}

func (p *fakePlayer) callNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.calls))
	for i, c := range p.calls {
		names[i] = c.name
	}
	return names
}

func (p *fakePlayer) lastCall() call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[len(p.calls)-1]
}

type fakeFetcher struct {
	playlist playlist.Playlist
	err      error
	release  chan struct{}
}

func (f *fakeFetcher) Fetch() (playlist.Playlist, error) {
	if f.release != nil {
		<-f.release
	}
	return f.playlist, f.err
}

var testStream = Stream{
	Url: "http://pianosolo.streamguys.net/live.m3u",
	Metadata: playlist.Metadata{
		Title:       "Aaron",
		Artist:      "Celine Dion",
		AlbumArtUri: "https://unsplash.it/300/300",
	},
}

func threeEntries() playlist.Playlist {
	return playlist.Playlist{
		{Title: "One", Artist: "A", Duration: 100, StreamUrl: "http://example.com/1"},
		{Title: "Two", Artist: "B", Duration: 200, StreamUrl: "http://example.com/2"},
		{Title: "Three", Artist: "C", Duration: 300, StreamUrl: "http://example.com/3"},
	}
}

type harness struct {
	ui      *uiThread
	player  *fakePlayer
	emitter *events.Emitter
	fetcher *fakeFetcher
	logger  *testLogger
	screen  *PlaybackScreen
}

func newHarness(fetcher *fakeFetcher) *harness {
	h := &harness{
		ui:      &uiThread{},
		player:  &fakePlayer{playing: true},
		emitter: events.NewEmitter(),
		fetcher: fetcher,
		logger:  &testLogger{},
	}
	h.screen = New(h.player, h.emitter, fetcher, h.logger, h.ui.dispatch, testStream)
	h.player.screen = h.screen
	return h
}

// mountedHarness returns a screen that has finished loading pl
func mountedHarness(t *testing.T, pl playlist.Playlist) *harness {
	h := newHarness(&fakeFetcher{playlist: pl})
	h.ui.dispatch(h.screen.Mount)
	require.Eventually(t, func() bool {
		loaded := false
		h.ui.dispatch(func() { loaded = h.screen.Playlist() != nil })
		return loaded
	}, time.Second, time.Millisecond)
	return h
}

func (h *harness) do(f func(s *PlaybackScreen)) {
	h.ui.dispatch(func() { f(h.screen) })
}

func (h *harness) currentTime() (t int) {
	h.do(func(s *PlaybackScreen) { t = s.CurrentTime() })
	return
}

func (h *harness) selectedIndex() (i int) {
	h.do(func(s *PlaybackScreen) { i = s.SelectedIndex() })
	return
}

func (h *harness) emitPosition(pos interface{}) {
	h.emitter.Emit(events.EventUpdatePosition, events.UpdatePosition{CurrentPosition: pos})
}

func TestMountFetchesPlaylistWithoutPlaying(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.do(func(s *PlaybackScreen) {
		assert.Len(t, s.Playlist(), 3)
		assert.Equal(t, 0, s.SelectedIndex())
		assert.Equal(t, 0, s.CurrentTime())
	})
	assert.Empty(t, h.player.callNames(), "mounting must not start playback")
	assert.Equal(t, 1, h.emitter.ListenerCount(events.EventUpdatePosition))
	assert.Equal(t, 1, h.emitter.ListenerCount(events.EventPlaybackStateChanged))
}

func TestFetchFailureLeavesScreenEmpty(t *testing.T) {
	h := newHarness(&fakeFetcher{err: errors.New("[Fetch] failed to make GET request: no route to host")})
	h.ui.dispatch(h.screen.Mount)

	require.Eventually(t, func() bool { return h.logger.errorCount() > 0 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, h.logger.errorCount(), "exactly one error is logged")

	h.do(func(s *PlaybackScreen) {
		assert.Nil(t, s.Playlist())
		assert.False(t, s.View().Visible)
	})
}

func TestUnmountReleasesSubscriptions(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.do(func(s *PlaybackScreen) { s.Unmount() })
	assert.Equal(t, 0, h.emitter.ListenerCount(events.EventUpdatePosition))
	assert.Equal(t, 0, h.emitter.ListenerCount(events.EventPlaybackStateChanged))

	h.emitPosition(42)
	h.player.resolveProbes()
	assert.Equal(t, 0, h.currentTime())
	assert.NotContains(t, h.player.callNames(), "isPlaying")
}

func TestPlaylistArrivingAfterUnmountIsDropped(t *testing.T) {
	fetcher := &fakeFetcher{playlist: threeEntries(), release: make(chan struct{})}
	h := newHarness(fetcher)
	h.ui.dispatch(h.screen.Mount)
	h.do(func(s *PlaybackScreen) { s.Unmount() })

	close(fetcher.release)
	require.Eventually(t, func() bool {
		h.logger.mu.Lock()
		defer h.logger.mu.Unlock()
		return len(h.logger.lines) > 0
	}, time.Second, time.Millisecond)

	h.do(func(s *PlaybackScreen) { assert.Nil(t, s.Playlist()) })
}

func TestPositionUpdateWhilePlaying(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.emitPosition("17")
	assert.Equal(t, 0, h.currentTime(), "position lands only after the probe answers")

	h.player.resolveProbes()
	assert.Equal(t, 17, h.currentTime())

	h.emitPosition(23.8)
	h.player.resolveProbes()
	assert.Equal(t, 23, h.currentTime())
}

func TestPositionUpdateWhileNotPlaying(t *testing.T) {
	h := mountedHarness(t, threeEntries())
	h.player.playing = false

	h.emitPosition(17)
	h.player.resolveProbes()
	assert.Equal(t, 0, h.currentTime())
}

func TestPositionUpdateIgnoredWhileDragging(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.do(func(s *PlaybackScreen) { s.Drag(50) })
	for _, pos := range []interface{}{10, "20", 30.5} {
		h.emitPosition(pos)
		h.player.resolveProbes()
		assert.Equal(t, 0, h.currentTime())
	}
	assert.NotContains(t, h.player.callNames(), "isPlaying", "no probe while dragging")
}

func TestLateProbeAfterDragStartStillApplies(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.emitPosition(40)
	h.do(func(s *PlaybackScreen) { s.Drag(80) })
	h.player.resolveProbes()

	assert.Equal(t, 40, h.currentTime())
}

func TestInvalidPositionIsLogged(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.emitPosition("not a number")
	h.player.resolveProbes()

	assert.Equal(t, 0, h.currentTime())
	assert.Equal(t, 1, h.logger.errorCount())
}

func TestPlaybackStateChangeOnlyLogs(t *testing.T) {
	h := mountedHarness(t, threeEntries())
	before := h.screen.View()

	h.emitter.Emit(events.EventPlaybackStateChanged, events.PlaybackStateChanged{State: events.StateError})

	h.do(func(s *PlaybackScreen) { assert.Equal(t, before, s.View()) })
	assert.Empty(t, h.player.callNames())
	assert.Equal(t, 0, h.logger.errorCount())
}

func TestPlayIgnoresSelection(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.do(func(s *PlaybackScreen) {
		s.Next()
		s.Play()
	})

	c := h.player.lastCall()
	assert.Equal(t, "play", c.name)
	assert.Equal(t, testStream.Url, c.url)
	assert.Equal(t, testStream.Metadata, c.metadata)
}

func TestPauseAndStop(t *testing.T) {
	h := mountedHarness(t, threeEntries())
	h.emitPosition(99)
	h.player.resolveProbes()
	require.Equal(t, 99, h.currentTime())

	h.do(func(s *PlaybackScreen) { s.Pause() })
	assert.Equal(t, 99, h.currentTime())

	h.do(func(s *PlaybackScreen) { s.Stop() })
	assert.Equal(t, 0, h.currentTime())
	assert.Equal(t, []string{"isPlaying", "pause", "stop"}, h.player.callNames())
}

func TestNextWraps(t *testing.T) {
	for n := 1; n <= 4; n++ {
		pl := make(playlist.Playlist, n)
		h := mountedHarness(t, pl)
		for i := 0; i < 2*n; i++ {
			before := h.selectedIndex()
			h.do(func(s *PlaybackScreen) { s.Next() })
			assert.Equal(t, (before+1)%n, h.selectedIndex())
		}
	}
}

func TestNextResetsTimeThenPlays(t *testing.T) {
	h := mountedHarness(t, threeEntries())
	h.emitPosition(12)
	h.player.resolveProbes()

	changes := 0
	h.screen.SetChangedFunc(func() { changes++ })
	h.do(func(s *PlaybackScreen) { s.Next() })

	c := h.player.lastCall()
	assert.Equal(t, "play", c.name)
	assert.Equal(t, 1, c.index, "selection is committed before playing")
	assert.Equal(t, 0, c.currentTime)
	assert.Equal(t, 1, changes)
}

func TestPrevFromFirstWrapsToLast(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.do(func(s *PlaybackScreen) { s.Prev() })
	assert.Equal(t, 2, h.selectedIndex())

	c := h.player.lastCall()
	assert.Equal(t, "play", c.name)
	assert.Equal(t, 2, c.index)
}

func TestPrevFromOtherIndexKeepsIndex(t *testing.T) {
	h := mountedHarness(t, threeEntries())
	h.do(func(s *PlaybackScreen) { s.Next() })
	h.emitPosition(5)
	h.player.resolveProbes()

	h.do(func(s *PlaybackScreen) { s.Prev() })
	assert.Equal(t, 1, h.selectedIndex())
	assert.Equal(t, 0, h.currentTime())
}

func TestNextNextPrevScenario(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	var got []int
	for _, step := range []func(s *PlaybackScreen){
		(*PlaybackScreen).Next,
		(*PlaybackScreen).Next,
		(*PlaybackScreen).Prev,
	} {
		h.do(step)
		got = append(got, h.selectedIndex())
	}
	assert.Equal(t, []int{1, 2, 2}, got)
}

func TestNextPrevWithoutPlaylist(t *testing.T) {
	h := newHarness(&fakeFetcher{err: errors.New("offline")})

	h.do(func(s *PlaybackScreen) {
		s.Next()
		s.Prev()
	})
	assert.Empty(t, h.player.callNames())
	assert.Equal(t, 2, h.logger.errorCount())
}

func TestSeekClearsDragFlagFirst(t *testing.T) {
	h := mountedHarness(t, threeEntries())

	h.do(func(s *PlaybackScreen) {
		s.Drag(10)
		s.Drag(20)
		assert.True(t, s.IsDragging())
		s.SeekTo(20)
		assert.False(t, s.IsDragging())
	})

	c := h.player.lastCall()
	assert.Equal(t, "seek", c.name)
	assert.Equal(t, 20, c.seconds)
	assert.False(t, c.dragging, "drag flag must be clear when the seek is issued")

	h.emitPosition(21)
	h.player.resolveProbes()
	assert.Equal(t, 21, h.currentTime())
}

func TestView(t *testing.T) {
	h := newHarness(&fakeFetcher{})
	assert.Equal(t, View{}, h.screen.View())

	h = mountedHarness(t, threeEntries())
	h.emitPosition(75)
	h.player.resolveProbes()

	h.do(func(s *PlaybackScreen) {
		assert.Equal(t, View{
			Visible:     true,
			Title:       "One by A",
			CurrentTime: 75,
			Max:         100,
			Low:         "01:15",
			High:        "01:40",
		}, s.View())
	})
}

func TestViewEmptyPlaylistFallsBackToOne(t *testing.T) {
	h := mountedHarness(t, playlist.Playlist{})

	h.do(func(s *PlaybackScreen) {
		v := s.View()
		assert.True(t, v.Visible)
		assert.Equal(t, 1, v.Max)
		assert.Equal(t, "", v.Title)
	})
}
