package storefront

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/storefront/internal/models"
)

func strPtr(s string) *string { return &s }

// --- Client ---

func TestClientListProducts(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		checkList  func(t *testing.T, list *models.ProductList)
		checkError func(t *testing.T, err error)
	}{
		{
			name:   "Success",
			status: http.StatusOK,
			body: `{"products":[{"id":1,"name":"Yoga Mat","price":"39.99","category_name":"Sports"}],
				"pagination":{"currentPage":1,"totalPages":1,"totalItems":1,"itemsPerPage":1,"hasNextPage":false,"hasPrevPage":false}}`,
			checkList: func(t *testing.T, list *models.ProductList) {
				require.Len(t, list.Products, 1)
				assert.Equal(t, "Yoga Mat", list.Products[0].Name)
				assert.Equal(t, "$39.99", FormatPrice(list.Products[0]))
				assert.Equal(t, 1, list.Pagination.TotalItems)
			},
		},
		{
			name:   "Missing products field is an empty list",
			status: http.StatusOK,
			body:   `{}`,
			checkList: func(t *testing.T, list *models.ProductList) {
				assert.NotNil(t, list.Products)
				assert.Len(t, list.Products, 0)
			},
		},
		{
			name:   "Service unavailable",
			status: http.StatusServiceUnavailable,
			body:   `{"error":"Database not available"}`,
			checkError: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
				assert.Equal(t, "Database not available", statusErr.Message)
				assert.Contains(t, err.Error(), "status: 503")
			},
		},
		{
			name:   "Malformed body",
			status: http.StatusOK,
			body:   `{"products":`,
			checkError: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode products")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			list, err := NewClient(srv.URL+"/", srv.Client()).ListProducts(context.Background())

			assert.Equal(t, "/api/products", gotPath)
			if tc.checkError != nil {
				require.Error(t, err)
				tc.checkError(t, err)
				return
			}
			require.NoError(t, err)
			tc.checkList(t, list)
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).ListProducts(context.Background())

	assert.Error(t, err)
}

// --- Summarize ---

func TestSummarize(t *testing.T) {
	testCases := []struct {
		name     string
		products []models.Product
		expected Stats
	}{
		{name: "Empty", products: nil, expected: Stats{}},
		{
			name: "Distinct category names",
			products: []models.Product{
				{Name: "A", CategoryName: strPtr("Sports")},
				{Name: "B", CategoryName: strPtr("Sports")},
				{Name: "C", CategoryName: strPtr("Books")},
			},
			expected: Stats{TotalProducts: 3, Categories: 2},
		},
		{
			name: "Uncategorized products count as one more value",
			products: []models.Product{
				{Name: "A", CategoryName: strPtr("Sports")},
				{Name: "B"},
				{Name: "C"},
			},
			expected: Stats{TotalProducts: 3, Categories: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Summarize(tc.products))
		})
	}
}

// --- Model ---

type stubLister struct {
	list  *models.ProductList
	err   error
	calls int
}

func (s *stubLister) ListProducts(ctx context.Context) (*models.ProductList, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

var twoProducts = []models.Product{
	{ID: 1, Name: "Basketball", Price: decimal.RequireFromString("24.99"), CategoryName: strPtr("Sports")},
	{ID: 2, Name: "Fiction Novel", Price: decimal.RequireFromString("19.99"), CategoryName: strPtr("Books")},
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelLoadsOnce(t *testing.T) {
	lister := &stubLister{list: &models.ProductList{Products: twoProducts}}
	m := NewModel(lister, time.Second)

	assert.Equal(t, ModeLoading, m.Mode())
	assert.Contains(t, m.View(), "Loading products...")

	msg := fetchProductsCmd(lister, time.Second)()
	m, _ = update(t, m, msg)

	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, ModeLoaded, m.Mode())
	assert.Equal(t, Stats{TotalProducts: 2, Categories: 2}, m.Stats())
	view := m.View()
	assert.Contains(t, view, "Basketball")
	assert.Contains(t, view, "$19.99")
}

func TestModelFailureAndRetry(t *testing.T) {
	lister := &stubLister{err: errors.New("connection refused")}
	m := NewModel(lister, time.Second)

	m, _ = update(t, m, fetchProductsCmd(lister, time.Second)())
	assert.Equal(t, ModeFailed, m.Mode())
	assert.Error(t, m.Err())
	assert.Contains(t, m.View(), "Oops! Something went wrong")

	// Retry re-issues the same request.
	lister.err = nil
	lister.list = &models.ProductList{Products: twoProducts}
	m, cmd := update(t, m, key("r"))
	assert.Equal(t, ModeLoading, m.Mode())
	require.NotNil(t, cmd)

	m, _ = update(t, m, fetchProductsCmd(lister, time.Second)())
	assert.Equal(t, ModeLoaded, m.Mode())
	assert.Equal(t, 2, lister.calls)
}

func TestModelRetryIgnoredUnlessFailed(t *testing.T) {
	m := NewModel(&stubLister{}, time.Second)
	m, _ = update(t, m, productsLoadedMsg{products: twoProducts})

	m, cmd := update(t, m, key("r"))

	assert.Equal(t, ModeLoaded, m.Mode())
	assert.Nil(t, cmd)
}

func TestModelEmptyState(t *testing.T) {
	m := NewModel(&stubLister{}, time.Second)
	m, _ = update(t, m, productsLoadedMsg{products: []models.Product{}})

	assert.Contains(t, m.View(), "No products found")

	m, cmd := update(t, m, key("a"))
	assert.Empty(t, m.Notice())
	assert.Nil(t, cmd)
}

func TestModelAddToCartIsTransient(t *testing.T) {
	m := NewModel(&stubLister{}, time.Second)
	m, _ = update(t, m, productsLoadedMsg{products: twoProducts})

	m, _ = update(t, m, key("l"))
	m, cmd := update(t, m, key("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, `Added "Fiction Novel" to cart!`, m.Notice())
	assert.True(t, strings.Contains(m.View(), "Fiction Novel"))

	// A second add restarts the timer; the first timer must not clear it.
	m, _ = update(t, m, key("a"))
	m, _ = update(t, m, clearNoticeMsg{id: 1})
	assert.NotEmpty(t, m.Notice())

	m, _ = update(t, m, clearNoticeMsg{id: 2})
	assert.Empty(t, m.Notice())
}

func TestModelCursorStaysInBounds(t *testing.T) {
	m := NewModel(&stubLister{}, time.Second)
	m, _ = update(t, m, productsLoadedMsg{products: twoProducts})

	m, _ = update(t, m, key("h"))
	m, _ = update(t, m, key("a"))
	assert.Equal(t, `Added "Basketball" to cart!`, m.Notice())

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, key("l"))
	}
	m, _ = update(t, m, key("a"))
	assert.Equal(t, `Added "Fiction Novel" to cart!`, m.Notice())
}
