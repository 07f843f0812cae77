package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	appadmin "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/admin"
	appbook "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/book"
	appcart "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/cart"
	apporder "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/order"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/mysql"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/redis"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/handler"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/middleware"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	adminEmail    = "admin@bookstore.com"
	adminPassword = "admin123"
)

// testServer 真实用例 + SQLite + miniredis 组装的完整路由
type testServer struct {
	engine *gin.Engine
	mr     *miniredis.Miniredis
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := mysql.Open(sqlite.Open(":memory:"), false)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, mysql.AutoMigrate(db))

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	bookService := book.NewService(mysql.NewBookRepository(db))
	adminService := admin.NewService(mysql.NewUserRepository(db))
	orderRepo := mysql.NewOrderRepository(db)
	carts := redis.NewCartStore(rdb, time.Hour)
	sessions := redis.NewSessionStore(rdb)
	tokens := jwt.NewManager("router-test-secret", time.Hour, jwt.DefaultIssuer)
	events := book.NopPublisher{}

	_, err = adminService.CreateAdmin(context.Background(), "Admin", adminEmail, adminPassword)
	require.NoError(t, err)

	h := Handlers{
		Book: handler.NewBookHandler(
			appbook.NewListBooksUseCase(bookService),
			appbook.NewGetBookUseCase(bookService),
			appbook.NewCreateBookUseCase(bookService, events),
			appbook.NewUpdateBookUseCase(bookService, events),
			appbook.NewDeleteBookUseCase(bookService, events),
		),
		Admin: handler.NewAdminHandler(
			appadmin.NewLoginUseCase(adminService, tokens, sessions),
			appadmin.NewGetSessionUseCase(sessions),
		),
		Cart: handler.NewCartHandler(appcart.NewService(carts, bookService)),
		Order: handler.NewOrderHandler(
			apporder.NewCreateOrderUseCase(orderRepo, bookService, carts, mysql.NewTxManager(db)),
			apporder.NewListOrdersUseCase(orderRepo),
			apporder.NewGetOrderUseCase(orderRepo),
			apporder.NewUpdateOrderStatusUseCase(orderRepo),
		),
	}

	engine := New(Options{Swagger: true}, zerolog.Nop(), h, middleware.NewAuthMiddleware(tokens))
	return &testServer{engine: engine, mr: mr}
}

// do 发送JSON请求;body为nil时不带请求体
func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) doForm(method, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/admin/login", "", gin.H{"email": adminEmail, "password": adminPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) createBook(t *testing.T, token string, body gin.H) appbook.BookView {
	t.Helper()
	w := s.do(http.MethodPost, "/api/books", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var v appbook.BookView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	msg, _ := body["error"].(string)
	return msg
}

func dune() gin.H {
	return gin.H{"title": "Dune", "author": "Frank Herbert", "price": "12.50", "category": "Fiction"}
}

func TestPingAndUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/ping", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong","status":"healthy"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())

	w = s.do(http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/books")
}

func TestBooks(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	t.Run("写接口不带Token返回401", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/books", "", dune())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Access denied. No token provided.", errorOf(t, w))

		w = s.do(http.MethodDelete, "/api/books/1", "bad.token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", errorOf(t, w))
	})

	var created appbook.BookView
	t.Run("创建图书", func(t *testing.T) {
		created = s.createBook(t, token, dune())
		assert.NotZero(t, created.ID)
		assert.Equal(t, 12.5, created.Price)
		assert.Nil(t, created.Description)
		assert.Nil(t, created.CoverImage)
		assert.False(t, created.Featured)

		w := s.do(http.MethodGet, "/api/books/"+itoa(created.ID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Dune", got["title"])
		assert.Nil(t, got["description"])
		assert.Contains(t, got, "createdAt")
	})

	t.Run("缺少必填字段", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/books", token, gin.H{"title": "Dune", "author": "Frank Herbert", "price": 0, "category": "Fiction"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields", errorOf(t, w))

		w = s.do(http.MethodPost, "/api/books", token, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields", errorOf(t, w))
	})

	t.Run("文本字段接受非字符串值", func(t *testing.T) {
		v := s.createBook(t, token, gin.H{"title": 123, "author": "Frank Herbert", "price": 8, "category": "Fiction"})
		assert.Equal(t, "123", v.Title)

		w := s.do(http.MethodDelete, "/api/books/"+itoa(v.ID), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("表单创建", func(t *testing.T) {
		w := s.doForm(http.MethodPost, "/api/books", token, url.Values{
			"title":    {"The Hobbit"},
			"author":   {"J.R.R. Tolkien"},
			"price":    {"9.99"},
			"category": {"Fantasy"},
			"featured": {"true"},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var v appbook.BookView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		assert.Equal(t, 9.99, v.Price)
		assert.True(t, v.Featured)
	})

	t.Run("列表筛选", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books?featured=true", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []appbook.BookView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, "The Hobbit", list[0].Title)

		w = s.do(http.MethodGet, "/api/books?search=herbert", "", nil)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, "Dune", list[0].Title)

		w = s.do(http.MethodGet, "/api/books?category=Poetry", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("更新要求全部字段", func(t *testing.T) {
		path := "/api/books/" + itoa(created.ID)
		w := s.do(http.MethodPut, path, token, dune())
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields are required (including image and description)", errorOf(t, w))

		full := dune()
		full["price"] = 15
		full["description"] = "Desert planet epic"
		full["coverImage"] = "https://example.com/dune.jpg"
		w = s.do(http.MethodPut, path, token, full)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var v appbook.BookView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		assert.Equal(t, 15.0, v.Price)
		require.NotNil(t, v.Description)
		assert.Equal(t, "Desert planet epic", *v.Description)
		assert.True(t, v.CreatedAt.Equal(created.CreatedAt))

		w = s.do(http.MethodPut, "/api/books/999", token, full)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", errorOf(t, w))
	})

	t.Run("删除两次", func(t *testing.T) {
		path := "/api/books/" + itoa(created.ID)
		w := s.do(http.MethodDelete, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Book deleted successfully"}`, w.Body.String())

		w = s.do(http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", errorOf(t, w))

		w = s.do(http.MethodGet, "/api/books/abc", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdmin(t *testing.T) {
	s := newTestServer(t)

	t.Run("邮箱不存在和密码错误返回相同响应", func(t *testing.T) {
		w1 := s.do(http.MethodPost, "/api/admin/login", "", gin.H{"email": "nobody@bookstore.com", "password": "x"})
		w2 := s.do(http.MethodPost, "/api/admin/login", "", gin.H{"email": adminEmail, "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, w1.Code, w2.Code)
		assert.Equal(t, w1.Body.String(), w2.Body.String())
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w1.Body.String())
	})

	t.Run("缺少邮箱或密码", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/admin/login", "", gin.H{"email": adminEmail})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email and password required", errorOf(t, w))
	})

	t.Run("表单登录并查看登录记录", func(t *testing.T) {
		w := s.doForm(http.MethodPost, "/api/admin/login", "", url.Values{
			"email":    {adminEmail},
			"password": {adminPassword},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Token string `json:"token"`
			Admin struct {
				ID    uint   `json:"id"`
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"admin"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, adminEmail, resp.Admin.Email)
		assert.Equal(t, "Admin", resp.Admin.Name)

		w = s.do(http.MethodGet, "/api/admin/session", resp.Token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var session appadmin.SessionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
		assert.Equal(t, resp.Admin.ID, session.AdminID)
		assert.Equal(t, adminEmail, session.Email)

		s.mr.FlushAll()
		w = s.do(http.MethodGet, "/api/admin/session", resp.Token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Session not found", errorOf(t, w))
	})
}

func TestCartAndOrders(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	b1 := s.createBook(t, token, dune())
	b2 := s.createBook(t, token, gin.H{"title": "Clean Code", "author": "Robert Martin", "price": 30, "category": "Tech"})

	t.Run("购物车增改删", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/cart/guest-1/items", "", gin.H{"bookId": b1.ID, "quantity": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.do(http.MethodPost, "/api/cart/guest-1/items", "", gin.H{"bookId": b2.ID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var view appcart.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		require.Len(t, view.Items, 2)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.Equal(t, 1, view.Items[1].Quantity)
		assert.Equal(t, 55.0, view.Total)

		w = s.do(http.MethodPut, "/api/cart/guest-1/items/"+itoa(b2.ID), "", gin.H{"quantity": 3})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, 115.0, view.Total)

		w = s.do(http.MethodPost, "/api/cart/guest-1/items", "", gin.H{"bookId": b1.ID, "quantity": 998})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Quantity must be between 1 and 999", errorOf(t, w))

		w = s.do(http.MethodPost, "/api/cart/guest-1/items", "", gin.H{"bookId": 999, "quantity": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = s.do(http.MethodDelete, "/api/cart/guest-1/items/"+itoa(b2.ID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		require.Len(t, view.Items, 1)
		assert.Equal(t, 25.0, view.Total)

		w = s.do(http.MethodGet, "/api/cart/bad%20id", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid cart id", errorOf(t, w))
	})

	var orderID uint
	t.Run("从购物车下单后清空购物车", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/orders", "", gin.H{
			"customerName":    "Alice",
			"customerEmail":   "alice@example.com",
			"shippingAddress": "1 Main St",
			"cartId":          "guest-1",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var o apporder.OrderView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
		orderID = o.ID
		assert.Equal(t, "pending", o.Status)
		assert.Equal(t, 25.0, o.Total)
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Dune", o.Items[0].Title)
		assert.NotEmpty(t, o.OrderNo)

		w = s.do(http.MethodGet, "/api/cart/guest-1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var view appcart.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Empty(t, view.Items)
	})

	t.Run("下单参数错误", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/orders", "", gin.H{
			"customerName":    "Alice",
			"customerEmail":   "alice@example.com",
			"shippingAddress": "1 Main St",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Order must contain at least one item", errorOf(t, w))

		w = s.do(http.MethodPost, "/api/orders", "", gin.H{
			"customerName":    "Alice",
			"customerEmail":   "alice@example.com",
			"shippingAddress": "1 Main St",
			"items":           []gin.H{{"bookId": 999, "quantity": 1}},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", errorOf(t, w))
	})

	t.Run("下单后改价不影响订单", func(t *testing.T) {
		full := gin.H{
			"title": "Dune", "author": "Frank Herbert", "price": 99, "category": "Fiction",
			"description": "d", "coverImage": "c",
		}
		w := s.do(http.MethodPut, "/api/books/"+itoa(b1.ID), token, full)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.do(http.MethodGet, "/api/orders/"+itoa(orderID), token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var o apporder.OrderView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
		assert.Equal(t, 12.5, o.Items[0].Price)
	})

	t.Run("订单管理需要管理员", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = s.do(http.MethodGet, "/api/orders", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []apporder.OrderView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)

		w = s.do(http.MethodGet, "/api/orders/999", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", errorOf(t, w))
	})

	t.Run("状态流转", func(t *testing.T) {
		path := "/api/orders/" + itoa(orderID) + "/status"
		w := s.do(http.MethodPatch, path, token, gin.H{"status": "shipped"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Order status does not allow this transition", errorOf(t, w))

		w = s.do(http.MethodPatch, path, token, gin.H{"status": "paid"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var o apporder.OrderView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
		assert.Equal(t, "paid", o.Status)

		w = s.do(http.MethodPatch, path, token, gin.H{"status": "lost"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid order status", errorOf(t, w))
	})
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
