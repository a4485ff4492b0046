package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/notify"
)

var creds = api.Credentials{Token: "t"}

// fakeBackend serves two pages of orders (5 + 2 items, total 12... the
// totals are the server's word, not arithmetic) and records traffic.
type fakeBackend struct {
	mu          sync.Mutex
	listCalls   int
	lastPage    int
	statusPuts  []string
	failStatus  bool
	failListing bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.listCalls++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		b.lastPage = page
		fail := b.failListing
		b.mu.Unlock()

		if fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}

		n := 5
		if page == 2 {
			n = 2
		}
		res := ListResponse{
			Total: 12,
			Page:  page,
			Pages: 2,
			StatusCounts: StatusCounts{
				Pending: 3, Processing: 4, Shipped: 2, Delivered: 2, Cancelled: 1,
			},
		}
		for i := 0; i < n; i++ {
			res.Orders = append(res.Orders, Order{
				ID:     fmt.Sprintf("p%d-o%d", page, i),
				Status: StatusPending,
				Items: []OrderItem{{
					Product:  ProductSnapshot{ID: "prod1", Name: "Shirt", Price: 19.99},
					Quantity: 1,
					Price:    19.99,
				}},
				TotalAmount: 19.99,
			})
		}
		json.NewEncoder(w).Encode(res)
	})
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.statusPuts = append(b.statusPuts, r.URL.Path)
		fail := b.failStatus
		b.mu.Unlock()
		if fail {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func newManager(t *testing.T) (*Manager, *fakeBackend) {
	t.Helper()
	b := &fakeBackend{}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return NewManager(api.New(srv.URL)), b
}

func TestFetchReplacesListAndSummary(t *testing.T) {
	m, _ := newManager(t)

	if err := m.Fetch(context.Background(), creds, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := len(m.Orders()); got != 5 {
		t.Fatalf("page 1 should hold 5 orders, got %d", got)
	}
	pg := m.Pagination()
	if pg.Total != 12 || pg.Page != 1 || pg.Pages != 2 {
		t.Fatalf("pagination = %+v", pg)
	}
	if pg.StatusCounts.Pending != 3 {
		t.Fatalf("pending count = %d", pg.StatusCounts.Pending)
	}
}

func TestChangePageValidRange(t *testing.T) {
	m, b := newManager(t)
	ctx := context.Background()
	if err := m.Fetch(ctx, creds, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if err := m.ChangePage(ctx, creds, 2); err != nil {
		t.Fatalf("change page: %v", err)
	}
	if got := len(m.Orders()); got != 2 {
		t.Fatalf("page 2 should hold 2 orders (no accumulation), got %d", got)
	}
	if pg := m.Pagination(); pg.Page != 2 {
		t.Fatalf("page = %d", pg.Page)
	}
	if b.lastPage != 2 {
		t.Fatalf("server saw page %d", b.lastPage)
	}
}

func TestChangePageOutOfRangeIssuesNoRequest(t *testing.T) {
	m, b := newManager(t)
	ctx := context.Background()
	if err := m.Fetch(ctx, creds, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	before := b.listCalls
	beforeOrders := m.Orders()

	for _, p := range []int{0, -1, 3, 99} {
		if err := m.ChangePage(ctx, creds, p); err != nil {
			t.Fatalf("ChangePage(%d) should silently ignore, got %v", p, err)
		}
	}

	if b.listCalls != before {
		t.Fatalf("out-of-range navigation issued %d requests", b.listCalls-before)
	}
	if len(m.Orders()) != len(beforeOrders) || m.Pagination().Page != 1 {
		t.Fatal("state changed on rejected navigation")
	}
}

func TestUpdateStatusRefetchesCurrentPage(t *testing.T) {
	m, b := newManager(t)
	ctx := context.Background()
	if err := m.Fetch(ctx, creds, 2); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	callsBefore := b.listCalls

	if err := m.UpdateStatus(ctx, creds, "abc123", StatusShipped); err != nil {
		t.Fatalf("update status: %v", err)
	}

	if len(b.statusPuts) != 1 || b.statusPuts[0] != "/api/orders/abc123/status" {
		t.Fatalf("status puts = %v", b.statusPuts)
	}
	if b.listCalls != callsBefore+1 || b.lastPage != 2 {
		t.Fatalf("expected refetch of current page 2, calls=%d lastPage=%d", b.listCalls, b.lastPage)
	}
	n, ok := m.Notifier().Current()
	if !ok || n.Kind != notify.Success || n.Message != "Order status updated successfully!" {
		t.Fatalf("notification = %+v (visible=%v)", n, ok)
	}
}

func TestUpdateStatusFailureKeepsStaleList(t *testing.T) {
	m, b := newManager(t)
	ctx := context.Background()
	if err := m.Fetch(ctx, creds, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	before := m.Orders()
	callsBefore := b.listCalls

	b.failStatus = true
	if err := m.UpdateStatus(ctx, creds, "abc123", StatusDelivered); err == nil {
		t.Fatal("expected error")
	}

	if b.listCalls != callsBefore {
		t.Fatal("failed mutation must not refetch")
	}
	if len(m.Orders()) != len(before) {
		t.Fatal("list changed after failed mutation")
	}
	n, ok := m.Notifier().Current()
	if !ok || n.Kind != notify.Error || n.Message != "Failed to update order status" {
		t.Fatalf("notification = %+v (visible=%v)", n, ok)
	}
}

// A page fetch that resolves after a newer one was issued must be
// discarded, not applied last-write-wins.
func TestStaleFetchIsDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var mu sync.Mutex
	call := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()

		res := ListResponse{Total: 12, Pages: 2}
		if n == 1 {
			close(firstStarted)
			<-releaseFirst
			res.Page = 1
			res.Orders = []Order{{ID: "old"}}
		} else {
			res.Page = 2
			res.Orders = []Order{{ID: "new"}}
		}
		json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(srv.Close)

	m := NewManager(api.New(srv.URL))
	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- m.Fetch(ctx, creds, 1) }()

	<-firstStarted
	// Second fetch is issued while the first is still in flight and
	// completes first.
	if err := m.Fetch(ctx, creds, 2); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	close(releaseFirst)
	if err := <-done; err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	held := m.Orders()
	if len(held) != 1 || held[0].ID != "new" {
		t.Fatalf("stale response won the race: %+v", held)
	}
	if pg := m.Pagination(); pg.Page != 2 {
		t.Fatalf("pagination regressed to page %d", pg.Page)
	}
}

func TestFetchFailureLeavesStateUntouched(t *testing.T) {
	m, b := newManager(t)
	ctx := context.Background()
	if err := m.Fetch(ctx, creds, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	before := m.Pagination()

	b.failListing = true
	if err := m.Fetch(ctx, creds, 2); err == nil {
		t.Fatal("expected fetch error")
	}

	if got := m.Pagination(); got != before {
		t.Fatalf("pagination changed on failure: %+v -> %+v", before, got)
	}
	if len(m.Orders()) != 5 {
		t.Fatal("order list changed on failure")
	}
	n, ok := m.Notifier().Current()
	if !ok || n.Message != "Failed to fetch orders" {
		t.Fatalf("notification = %+v (visible=%v)", n, ok)
	}
}
