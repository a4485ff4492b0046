package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/config"
	"github.com/khauvukhanh/web-clot/internal/modules/categories"
	"github.com/khauvukhanh/web-clot/internal/modules/orders"
	"github.com/khauvukhanh/web-clot/internal/modules/products"
	"github.com/khauvukhanh/web-clot/internal/storage"
)

type backendStats struct {
	statusPuts []string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStorefront serves just enough of the remote API for the order
// screen: two pages of orders and a status update endpoint.
func fakeStorefront(t *testing.T, stats *backendStats) *httptest.Server {
	t.Helper()

	order := func(id string, status orders.Status) orders.Order {
		return orders.Order{
			ID:          id,
			Status:      status,
			TotalAmount: 49.90,
			CreatedAt:   time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		}
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders":
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page < 1 {
				page = 1
			}
			res := orders.ListResponse{
				Total: 12,
				Page:  page,
				Pages: 2,
				StatusCounts: orders.StatusCounts{
					Pending: 3, Processing: 4, Shipped: 2, Delivered: 2, Cancelled: 1,
				},
			}
			if page == 1 {
				res.Orders = []orders.Order{
					order("ord001", orders.StatusPending),
					order("ord002", orders.StatusShipped),
				}
			} else {
				res.Orders = []orders.Order{order("ord003", orders.StatusDelivered)}
			}
			_ = json.NewEncoder(w).Encode(res)

		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/status"):
			stats.statusPuts = append(stats.statusPuts, r.URL.Path)
			_, _ = w.Write([]byte(`{}`))

		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestRouter(t *testing.T, apiBase string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Env:           "dev",
		Port:          "0",
		APIBaseURL:    apiBase,
		SessionSecret: []byte("router-test-secret"),
		SessionTTL:    time.Hour,
	}
	client := api.New(apiBase)

	return NewRouter(Deps{
		Cfg:     cfg,
		Logger:  discardLogger(),
		Store:   storage.NewLocal(t.TempDir(), "/uploads"),
		CatMgr:  categories.NewManager(client),
		ProdMgr: products.NewManager(client),
		OrdMgr:  orders.NewManager(client),
	})
}

// signIn posts a token to /session and returns the cookies the browser
// would hold afterwards.
func signIn(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	form := url.Values{"token": {"test-bearer-token"}}
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("sign in status = %d, want %d", w.Code, http.StatusFound)
	}
	return w.Result().Cookies()
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiresSession(t *testing.T) {
	stats := &backendStats{}
	backend := fakeStorefront(t, stats)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)

	w := get(r, "/admin/orders", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/session" {
		t.Fatalf("redirect = %q, want /session", loc)
	}
}

func TestOrdersPageRendersSummaryAndPagination(t *testing.T) {
	stats := &backendStats{}
	backend := fakeStorefront(t, stats)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)
	cookies := signIn(t, r)

	w := get(r, "/admin/orders", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Page 1 of 2",
		"Total Orders: 12",
		"ord001",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestOrderStatusUpdateRedirectsBackToPage(t *testing.T) {
	stats := &backendStats{}
	backend := fakeStorefront(t, stats)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)
	cookies := signIn(t, r)

	form := url.Values{"status": {"shipped"}, "page": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/ord001/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/orders?page=1" {
		t.Fatalf("redirect = %q, want /admin/orders?page=1", loc)
	}
	if len(stats.statusPuts) != 1 || stats.statusPuts[0] != "/api/orders/ord001/status" {
		t.Fatalf("backend saw status puts %v", stats.statusPuts)
	}

	// The flash cookie set on the redirect carries the toast onto the
	// next page load.
	followCookies := append([]*http.Cookie{}, cookies...)
	followCookies = append(followCookies, w.Result().Cookies()...)
	w2 := get(r, "/admin/orders?page=1", followCookies)
	if w2.Code != http.StatusOK {
		t.Fatalf("follow-up status = %d, want %d", w2.Code, http.StatusOK)
	}
	if !strings.Contains(w2.Body.String(), "Order status updated successfully!") {
		t.Errorf("follow-up page missing success toast")
	}
}

func TestUploadedImageIsServedBack(t *testing.T) {
	stats := &backendStats{}
	backend := fakeStorefront(t, stats)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)
	cookies := signIn(t, r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "shirt.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("not a real png, the backend only checks the extension")); err != nil {
		t.Fatal(err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}
	var res struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("upload response: %v", err)
	}
	if !strings.HasPrefix(res.URL, "/uploads/") {
		t.Fatalf("upload url = %q, want /uploads/ prefix", res.URL)
	}

	// The returned URL must resolve through the same router.
	w2 := get(r, res.URL, cookies)
	if w2.Code != http.StatusOK {
		t.Fatalf("GET %s = %d, want %d", res.URL, w2.Code, http.StatusOK)
	}
}

func TestFormsCarryUploadControl(t *testing.T) {
	stats := &backendStats{}
	backend := fakeStorefront(t, stats)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)
	cookies := signIn(t, r)

	for path, target := range map[string]string{
		"/admin/categories": "uploadImage(this, 'image')",
		"/admin/products":   "uploadImage(this, 'thumbnail')",
	} {
		w := get(r, path, cookies)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want %d", path, w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), target) {
			t.Errorf("%s missing upload control %q", path, target)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	stats := &backendStats{}
	backend := fakeStorefront(t, stats)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)

	w := get(r, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("body = %q", w.Body.String())
	}
}
