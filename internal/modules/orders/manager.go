package orders

import (
	"context"
	"fmt"
	"sync"

	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/notify"
)

const (
	msgFetchFailed   = "Failed to fetch orders"
	msgStatusUpdated = "Order status updated successfully!"
	msgStatusFailed  = "Failed to update order status"
)

// Manager owns the order screen's state: exactly one server page of
// orders plus the pagination summary. There is no accumulation across
// pages and no local patching; status updates refetch the current page
// so the tallies stay consistent with the server.
type Manager struct {
	client   *api.Client
	notifier *notify.Notifier

	mu     sync.RWMutex
	orders []Order
	pg     Pagination
	issued uint64
}

func NewManager(client *api.Client) *Manager {
	return &Manager{
		client:   client,
		notifier: notify.New(notify.DefaultDuration),
		pg:       Pagination{Page: 1, Pages: 1},
	}
}

func (m *Manager) Notifier() *notify.Notifier { return m.notifier }

func (m *Manager) Orders() []Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Order, len(m.orders))
	copy(out, m.orders)
	return out
}

func (m *Manager) Pagination() Pagination {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pg
}

// Fetch loads page (1-based, defaults to 1) and replaces the held list
// and summary with the response verbatim. On failure the previous state
// stays and an error toast is raised. Raced fetches are resolved by
// generation: only the newest issued request may apply its response.
func (m *Manager) Fetch(ctx context.Context, creds api.Credentials, page int) error {
	if page < 1 {
		page = 1
	}

	m.mu.Lock()
	m.issued++
	gen := m.issued
	m.mu.Unlock()

	var res ListResponse
	err := m.client.Get(ctx, creds, fmt.Sprintf("/api/orders?page=%d", page), &res)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.issued {
		return nil
	}
	if err != nil {
		m.notifier.Error(msgFetchFailed)
		return err
	}
	m.orders = res.Orders
	m.pg = Pagination{
		Total:        res.Total,
		Page:         res.Page,
		Pages:        res.Pages,
		StatusCounts: res.StatusCounts,
	}
	return nil
}

// ChangePage rejects out-of-range targets outright (no clamping, no
// request, no toast) and otherwise fetches the requested page.
func (m *Manager) ChangePage(ctx context.Context, creds api.Credentials, page int) error {
	m.mu.RLock()
	pages := m.pg.Pages
	m.mu.RUnlock()

	if page < 1 || page > pages {
		return nil
	}
	return m.Fetch(ctx, creds, page)
}

// UpdateStatus sends the new status for one order. Success refetches
// the current page (never a local patch) and raises the success toast;
// failure leaves the now-stale list in place behind an error toast.
func (m *Manager) UpdateStatus(ctx context.Context, creds api.Credentials, orderID string, status Status) error {
	body := map[string]Status{"status": status}
	if err := m.client.Put(ctx, creds, "/api/orders/"+orderID+"/status", body); err != nil {
		m.notifier.Error(msgStatusFailed)
		return err
	}

	m.mu.RLock()
	page := m.pg.Page
	m.mu.RUnlock()

	_ = m.Fetch(ctx, creds, page)
	m.notifier.Success(msgStatusUpdated)
	return nil
}
