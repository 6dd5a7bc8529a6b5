package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/binaamart/storefront/internal/cart"
	"github.com/binaamart/storefront/internal/catalog"
	"github.com/binaamart/storefront/internal/contact"
	api "github.com/binaamart/storefront/internal/http"
	handler "github.com/binaamart/storefront/internal/http/handlers"
	"github.com/binaamart/storefront/internal/http/session"
	"github.com/binaamart/storefront/internal/models"
)

var (
	slots       *cart.MemorySlotStore
	cartHub     *cart.Hub
	contactRepo *contact.InMemoryRepository
)

func init() {
	handler.SetCatalogRepo(catalog.NewInMemoryRepository(testCatalog()))

	contactRepo = contact.NewInMemoryRepository()
	handler.SetContactRepo(contactRepo)

	resetCarts()
}

func testCatalog() models.CatalogDocument {
	return models.CatalogDocument{
		Products: []models.Product{
			{ID: 7, Name: "Gypsum Board", Category: "Boards", Brand: "Binaa", Price: 100, Material: "Gypsum", Style: "Industrial", Rating: 4.2, InStock: true},
			{ID: 12, Name: "Travertine Tile", Category: "Tiles", Brand: "MarmoCo", Price: 210, Material: "Stone", Style: "Classic", Rating: 4.7, IsOnSale: true, Discount: 10, InStock: true},
			{ID: 30, Name: "Acrylic Paint Bucket", Category: "Paint", Brand: "ColorWay", Price: 35, Material: "Acrylic", Style: "Modern", Rating: 3.8, IsNew: true},
		},
	}
}

// resetCarts replaces the slot store and hub so each test starts from empty
// durable state.
func resetCarts() {
	slots = cart.NewMemorySlotStore()
	cartHub = cart.NewHub(slots, zap.NewNop())
	handler.SetCartHub(cartHub)
}

func clearAllContactMessages() {
	contactRepo.Clear()
}

// sessionClient replays the cart_session cookie across requests, the way a
// browser would.
type sessionClient struct {
	router http.Handler
	cookie *http.Cookie
}

func newSessionClient() *sessionClient {
	return &sessionClient{router: api.NewRouter()}
}

func (c *sessionClient) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if c.cookie == nil {
		for _, ck := range w.Result().Cookies() {
			if ck.Name == session.CookieName {
				c.cookie = ck
			}
		}
	}
	return w
}

func decodeState(w *httptest.ResponseRecorder) (cart.State, error) {
	var state cart.State
	err := json.NewDecoder(w.Body).Decode(&state)
	return state, err
}
