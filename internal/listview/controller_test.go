package listview

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// immediateClient answers every fetch instantly with a page echoing the
// requested state.
type immediateClient struct {
	mu       sync.Mutex
	requests []QueryState
	err      error
}

func (c *immediateClient) Fetch(ctx context.Context, state QueryState) (*Page, error) {
	c.mu.Lock()
	c.requests = append(c.requests, state)
	c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}
	return &Page{
		Rows:       []RowModel{{Name: "echo:" + state.Term}},
		Total:      1,
		Page:       state.Page,
		TotalPages: 1,
	}, nil
}

func (c *immediateClient) recorded() []QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]QueryState(nil), c.requests...)
}

// blockingClient parks each fetch until the test releases it, so requests
// can be held in flight deliberately.
type blockingClient struct {
	arrived chan QueryState
	release chan *Page
}

func newBlockingClient() *blockingClient {
	return &blockingClient{
		arrived: make(chan QueryState, 16),
		release: make(chan *Page),
	}
}

func (c *blockingClient) Fetch(ctx context.Context, state QueryState) (*Page, error) {
	c.arrived <- state
	page := <-c.release
	if page == nil {
		return nil, errors.New("fetch failed")
	}
	return page, nil
}

type recordingRenderer struct {
	mu      sync.Mutex
	renders []Page
}

func (r *recordingRenderer) Render(rows []RowModel, total int64, page, totalPages int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders = append(r.renders, Page{Rows: rows, Total: total, Page: page, TotalPages: totalPages})
}

func (r *recordingRenderer) last() (Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.renders) == 0 {
		return Page{}, false
	}
	return r.renders[len(r.renders)-1], true
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.renders)
}

type recordingURLStore struct {
	mu     sync.Mutex
	values []url.Values
}

func (u *recordingURLStore) SetQuery(values url.Values) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.values = append(u.values, values)
}

func (u *recordingURLStore) last() (url.Values, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.values) == 0 {
		return nil, false
	}
	return u.values[len(u.values)-1], true
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, level+": "+message)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

func waitForRequest(t *testing.T, arrived chan QueryState) QueryState {
	t.Helper()
	select {
	case state := <-arrived:
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a request")
		return QueryState{}
	}
}

func assertNoRequest(t *testing.T, arrived chan QueryState, within time.Duration) {
	t.Helper()
	select {
	case state := <-arrived:
		t.Fatalf("unexpected request issued: %+v", state)
	case <-time.After(within):
	}
}

func waitForIdle(t *testing.T, c *Controller) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Phase() == PhaseIdle {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("controller never returned to idle")
}

func TestController_DebounceCollapsesKeystrokes(t *testing.T) {
	client := &immediateClient{}
	renderer := &recordingRenderer{}

	c := NewController(client, renderer, &recordingURLStore{}, &recordingNotifier{}, Config{
		Debounce: 60 * time.Millisecond,
	})

	// Three keystrokes inside the debounce window
	c.SetTerm("a")
	time.Sleep(20 * time.Millisecond)
	c.SetTerm("an")
	time.Sleep(20 * time.Millisecond)
	c.SetTerm("ana")

	// Quiescence
	time.Sleep(200 * time.Millisecond)
	waitForIdle(t, c)

	requests := client.recorded()
	require.Len(t, requests, 1, "keystrokes must collapse into one request")
	assert.Equal(t, "ana", requests[0].Term)
	assert.Equal(t, 1, requests[0].Page)
}

func TestController_DebounceTimerResetsOnEveryKeystroke(t *testing.T) {
	client := &immediateClient{}

	c := NewController(client, &recordingRenderer{}, nil, nil, Config{
		Debounce: 80 * time.Millisecond,
	})

	// Keep typing faster than the debounce window for a while
	for i := 0; i < 5; i++ {
		c.SetTerm("abc")
		time.Sleep(30 * time.Millisecond)
	}
	assert.Empty(t, client.recorded(), "no request while typing continues")

	time.Sleep(200 * time.Millisecond)
	waitForIdle(t, c)
	assert.Len(t, client.recorded(), 1)
}

func TestController_InFlightGuardCoalescesTriggers(t *testing.T) {
	client := newBlockingClient()
	renderer := &recordingRenderer{}

	c := NewController(client, renderer, &recordingURLStore{}, &recordingNotifier{}, Config{
		Debounce: time.Millisecond,
	})

	c.SetTerm("maria")
	first := waitForRequest(t, client.arrived)
	assert.Equal(t, "maria", first.Term)

	// Filter changes while the search is outstanding must not issue a
	// concurrent request.
	c.SetStatus("active")
	c.SetStatus("blocked")
	assertNoRequest(t, client.arrived, 100*time.Millisecond)

	// Completing the first request releases exactly one follow-up carrying
	// the combined latest state.
	client.release <- &Page{Page: 1, TotalPages: 1}
	followUp := waitForRequest(t, client.arrived)
	assert.Equal(t, "maria", followUp.Term)
	assert.Equal(t, "blocked", followUp.Status)
	assert.Equal(t, 1, followUp.Page)

	client.release <- &Page{Page: 1, TotalPages: 1}
	waitForIdle(t, c)
	assertNoRequest(t, client.arrived, 100*time.Millisecond)
}

func TestController_StaleResponseDropped(t *testing.T) {
	renderer := &recordingRenderer{}
	urls := &recordingURLStore{}

	c := NewController(&immediateClient{}, renderer, urls, &recordingNotifier{}, Config{})

	newer := &Page{Rows: []RowModel{{Name: "newer"}}, Total: 1, Page: 1, TotalPages: 1}
	older := &Page{Rows: []RowModel{{Name: "older"}}, Total: 1, Page: 1, TotalPages: 1}

	// The newer response lands first; the older one straggles in afterwards.
	c.complete(2, QueryState{Term: "new", Page: 1}, newer, nil)
	c.complete(1, QueryState{Term: "old", Page: 1}, older, nil)

	require.Equal(t, 1, renderer.count(), "stale response must not be rendered")
	last, ok := renderer.last()
	require.True(t, ok)
	assert.Equal(t, "newer", last.Rows[0].Name)

	values, ok := urls.last()
	require.True(t, ok)
	assert.Equal(t, "new", values.Get("search"))
}

func TestController_FailureKeepsRowsAndNotifies(t *testing.T) {
	client := &immediateClient{err: errors.New("connection refused")}
	renderer := &recordingRenderer{}
	notifier := &recordingNotifier{}

	c := NewController(client, renderer, &recordingURLStore{}, notifier, Config{})

	c.GoToPage(2)
	waitForIdle(t, c)

	assert.Equal(t, 0, renderer.count(), "failed refresh must not touch the rows")
	assert.Equal(t, 1, notifier.count())

	// No automatic retry
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, client.recorded(), 1)

	// Controller stays usable
	client.err = nil
	c.Refresh()
	waitForIdle(t, c)
	assert.Equal(t, 1, renderer.count())
}

func TestController_FilterChangesResetPage(t *testing.T) {
	client := &immediateClient{}

	c := NewController(client, &recordingRenderer{}, nil, nil, Config{
		Debounce: 10 * time.Millisecond,
		Initial:  QueryState{Page: 3, Status: "active"},
	})

	c.SetStatus("inactive")
	waitForIdle(t, c)

	requests := client.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, 1, requests[0].Page, "status change goes back to page 1")

	c.GoToPage(2)
	waitForIdle(t, c)

	requests = client.recorded()
	require.Len(t, requests, 2)
	assert.Equal(t, 2, requests[1].Page)
	assert.Equal(t, "inactive", requests[1].Status, "page change preserves the filter")
}

func TestController_URLOmitsFirstPage(t *testing.T) {
	client := &immediateClient{}
	urls := &recordingURLStore{}

	c := NewController(client, &recordingRenderer{}, urls, nil, Config{})

	c.SetStatus("blocked")
	waitForIdle(t, c)

	values, ok := urls.last()
	require.True(t, ok)
	assert.Equal(t, "blocked", values.Get("status"))
	assert.Empty(t, values.Get("page"), "page 1 stays out of the URL")

	c.GoToPage(2)
	waitForIdle(t, c)

	values, ok = urls.last()
	require.True(t, ok)
	assert.Equal(t, "2", values.Get("page"))
}

func TestController_TotalPagesFloorsAtOne(t *testing.T) {
	renderer := &recordingRenderer{}

	c := NewController(&immediateClient{}, renderer, nil, nil, Config{})
	c.complete(1, QueryState{Page: 1}, &Page{Rows: nil, Total: 0, Page: 1, TotalPages: 0}, nil)

	last, ok := renderer.last()
	require.True(t, ok)
	assert.Equal(t, 1, last.TotalPages)
}
