package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appgenre "github.com/xiebiao/bookcatalog/internal/application/genre"
	applibrary "github.com/xiebiao/bookcatalog/internal/application/library"
	appreview "github.com/xiebiao/bookcatalog/internal/application/review"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
)

const allowedOrigin = "http://localhost:3000"

// newTestServer 完整组装一套服务,数据库为SQLite内存库
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, EnableSwagger: true},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		},
		CORS: config.CORSConfig{
			Enabled:      true,
			AllowOrigins: []string{allowedOrigin},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	db, err := rdb.NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	tx := rdb.NewTxManager(db)
	users := rdb.NewUserRepository(db)
	books := rdb.NewBookRepository(db)
	authors := rdb.NewAuthorRepository(db)
	genres := rdb.NewGenreRepository(db)
	reviews := rdb.NewReviewRepository(db)
	entries := rdb.NewLibraryRepository(db)

	return New(cfg, Handlers{
		User:    handler.NewUserHandler(appuser.NewUseCase(tx, users)),
		Book:    handler.NewBookHandler(appbook.NewUseCase(tx, books, authors, genres)),
		Author:  handler.NewAuthorHandler(appauthor.NewUseCase(tx, authors)),
		Genre:   handler.NewGenreHandler(appgenre.NewUseCase(tx, genres)),
		Review:  handler.NewReviewHandler(appreview.NewUseCase(tx, reviews, users, books)),
		Library: handler.NewLibraryHandler(applibrary.NewUseCase(tx, entries)),
	})
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func requireMessage(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, want, body["message"])
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, w, &body)
	return body["error"]
}

type bookRow struct {
	BookID     uint     `json:"bookID"`
	BookName   string   `json:"bookName"`
	AuthorName *string  `json:"authorName"`
	GenreName  *string  `json:"genreName"`
	Synopsis   string   `json:"synopsis"`
	AvgRating  *float64 `json:"avg_rating"`
	NumRating  int64    `json:"num_rating"`
}

func listBooks(t *testing.T, r http.Handler, query string) []bookRow {
	t.Helper()
	w := do(t, r, http.MethodGet, "/api/books"+query, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rows []bookRow
	decode(t, w, &rows)
	return rows
}

// seed 通过HTTP接口准备数据
//
//	Dune(SciFi, Frank Herbert)          评分 4,5
//	The Hobbit(Fantasy, J.R.R. Tolkien) 评分 3,4 → 平均3.5
func seed(t *testing.T, r http.Handler) {
	t.Helper()

	requireMessage(t, do(t, r, http.MethodPost, "/api/genres", map[string]string{"genre_name": "Fantasy"}), "Genre added successfully")
	requireMessage(t, do(t, r, http.MethodPost, "/api/genres", map[string]string{"genre_name": "SciFi"}), "Genre added successfully")
	requireMessage(t, do(t, r, http.MethodPost, "/api/authors", map[string]string{"author_name": "Frank Herbert"}), "Author added successfully")
	requireMessage(t, do(t, r, http.MethodPost, "/api/authors", map[string]string{"author_name": "J.R.R. Tolkien"}), "Author added successfully")

	requireMessage(t, do(t, r, http.MethodPost, "/api/books", map[string]string{
		"bookName": "Dune", "authorName": "Frank Herbert", "genreName": "SciFi", "synopsis": "Spice",
	}), "Book added successfully")
	requireMessage(t, do(t, r, http.MethodPost, "/api/books", map[string]string{
		"bookName": "The Hobbit", "authorName": "J.R.R. Tolkien", "genreName": "Fantasy",
	}), "Book added successfully")

	requireMessage(t, do(t, r, http.MethodPost, "/api/users", map[string]string{
		"username": "ada", "email": "ada@example.com", "join_date": "2024-01-15", "bio": "",
	}), "User added successfully")

	for _, rv := range []struct {
		book   string
		rating int
	}{{"Dune", 4}, {"Dune", 5}, {"The Hobbit", 3}, {"The Hobbit", 4}} {
		requireMessage(t, do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
			"userName": "ada", "bookName": rv.book, "rating": rv.rating, "review": "ok", "review_date": "2024-02-01",
		}), "Review added successfully")
	}
}

func TestPing(t *testing.T) {
	r := newTestServer(t)

	w := do(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestUsers_InvalidEmailRejected(t *testing.T) {
	r := newTestServer(t)

	w := do(t, r, http.MethodPost, "/api/users", map[string]string{
		"username": "bob", "email": "not-an-email", "join_date": "2024-01-15",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email format", errorOf(t, w))

	w = do(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUsers_UpdateAndDelete(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	requireMessage(t, do(t, r, http.MethodPut, "/api/users/", map[string]interface{}{
		"userID": 1, "username": "ada", "email": "lovelace@example.com", "join_date": "2024-03-01", "bio": "math",
	}), "User updated successfully")

	w := do(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"userID":1,"username":"ada","email":"lovelace@example.com","join_date":"2024-03-01","bio":"math"}]`, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/users/", map[string]interface{}{"userID": 1, "email": "broken"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	requireMessage(t, do(t, r, http.MethodDelete, "/api/users/1", nil), "User deleted successfully")
	// 不存在的ID同样返回成功
	requireMessage(t, do(t, r, http.MethodDelete, "/api/users/1", nil), "User deleted successfully")

	// 用户删除后其评论不再出现在列表中
	w = do(t, r, http.MethodGet, "/api/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBooks_List(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	rows := listBooks(t, r, "")
	require.Len(t, rows, 2)
	assert.Equal(t, "Dune", rows[0].BookName)
	require.NotNil(t, rows[0].AvgRating)
	assert.InDelta(t, 4.5, *rows[0].AvgRating, 1e-9)
	assert.Equal(t, int64(2), rows[0].NumRating)

	rows = listBooks(t, r, "?genres[]=Fantasy&genres[]=SciFi&bookName=Dune")
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0].BookName)
	require.NotNil(t, rows[0].GenreName)
	assert.Equal(t, "SciFi", *rows[0].GenreName)

	// 平均分恰好3.5的书不满足 avg_rating > 3.5
	rows = listBooks(t, r, "?avg_rating=3.5")
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0].BookName)

	rows = listBooks(t, r, "?authorName=J.R.R.%20Tolkien")
	require.Len(t, rows, 1)
	assert.Equal(t, "The Hobbit", rows[0].BookName)

	// 空值等同于未传
	assert.Equal(t, listBooks(t, r, ""), listBooks(t, r, "?bookName=&genres[]=&avg_rating=&num_rating=&unknown=x"))
}

func TestBooks_InvalidNumericFilter(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	w := do(t, r, http.MethodGet, "/api/books?num_rating=lots", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errorOf(t, w), "invalid filter value")
	assert.NotContains(t, w.Body.String(), "Dune")
}

// 解析不到的名称存NULL,请求照常成功;列表内连接作者与类型,这样的图书不出现
func TestBooks_UnknownNamesStoreNull(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	requireMessage(t, do(t, r, http.MethodPost, "/api/books", map[string]string{
		"bookName": "Ghost", "authorName": "Nobody", "genreName": "SciFi",
	}), "Book added successfully")
	requireMessage(t, do(t, r, http.MethodPost, "/api/books", map[string]string{"bookName": "Anonymous"}), "Book added successfully")

	rows := listBooks(t, r, "")
	require.Len(t, rows, 2)
	assert.Empty(t, listBooks(t, r, "?bookName=Ghost"))

	// 图书已写入:按书名评论可以解析到它
	requireMessage(t, do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"userName": "ada", "bookName": "Ghost", "rating": 2, "review": "boo", "review_date": "2024-03-01",
	}), "Review added successfully")

	// 未知用户的评论存NULL用户,评论列表不返回,但仍计入图书评分
	requireMessage(t, do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"userName": "ghost", "bookName": "Dune", "rating": 3, "review": "meh", "review_date": "2024-03-02",
	}), "Review added successfully")

	w := do(t, r, http.MethodGet, "/api/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []map[string]interface{}
	decode(t, w, &reviews)
	require.Len(t, reviews, 5)
	assert.Equal(t, "Ghost", reviews[4]["bookName"])

	rows = listBooks(t, r, "?bookName=Dune")
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].NumRating)
}

func TestBooks_Delete(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	requireMessage(t, do(t, r, http.MethodDelete, "/api/books/2", nil), "Book deleted successfully")
	rows := listBooks(t, r, "")
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0].BookName)

	w := do(t, r, http.MethodDelete, "/api/books/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errorOf(t, w), "invalid parameters")
}

func TestGenres_DeleteDetachesBooks(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	requireMessage(t, do(t, r, http.MethodDelete, "/api/genres/1", nil), "Genre deleted successfully")

	w := do(t, r, http.MethodGet, "/api/genres", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"genreID":2,"genre_name":"SciFi"}]`, w.Body.String())

	// The Hobbit失去类型后不再出现在列表中
	rows := listBooks(t, r, "")
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0].BookName)

	assert.Empty(t, listBooks(t, r, "?genres[]=Fantasy"))
}

func TestAuthors_DeleteDetachesBooks(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	requireMessage(t, do(t, r, http.MethodDelete, "/api/authors/1", nil), "Author deleted successfully")

	rows := listBooks(t, r, "")
	require.Len(t, rows, 1)
	assert.Equal(t, "The Hobbit", rows[0].BookName)
	require.NotNil(t, rows[0].AuthorName)
	assert.Equal(t, "J.R.R. Tolkien", *rows[0].AuthorName)

	w := do(t, r, http.MethodGet, "/api/authors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Frank Herbert")
}

func TestReviews_ListAndDelete(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	w := do(t, r, http.MethodGet, "/api/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []map[string]interface{}
	decode(t, w, &reviews)
	require.Len(t, reviews, 4)
	assert.Equal(t, "ada", reviews[0]["username"])
	assert.Equal(t, "Dune", reviews[0]["bookName"])
	assert.Equal(t, "2024-02-01", reviews[0]["review_date"])

	requireMessage(t, do(t, r, http.MethodDelete, "/api/reviews/1", nil), "Review deleted successfully")
	rows := listBooks(t, r, "?bookName=Dune")
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].NumRating)

	// 评分也可以是数字字符串
	requireMessage(t, do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"userName": "ada", "bookName": "Dune", "rating": "1", "review": "changed my mind", "review_date": "2024-02-02",
	}), "Review added successfully")
	rows = listBooks(t, r, "?bookName=Dune")
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].NumRating)
	require.NotNil(t, rows[0].AvgRating)
	assert.InDelta(t, 3.0, *rows[0].AvgRating, 1e-9)

	w = do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{"userName": "ada", "bookName": "Dune", "rating": "great"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errorOf(t, w), "malformed request body")
}

func TestLibrary(t *testing.T) {
	r := newTestServer(t)
	seed(t, r)

	requireMessage(t, do(t, r, http.MethodPost, "/api/library", map[string]interface{}{"userID": 1, "bookID": 1}), "Library updated successfully")
	requireMessage(t, do(t, r, http.MethodPost, "/api/library", map[string]interface{}{"userID": 1, "bookID": 1, "has_read": true}), "Library updated successfully")

	w := do(t, r, http.MethodGet, "/api/users/1/library", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"userID":1,"bookID":1,"bookName":"Dune","has_read":true}]`, w.Body.String())

	requireMessage(t, do(t, r, http.MethodDelete, "/api/library/1/1", nil), "Library entry removed successfully")
	w = do(t, r, http.MethodGet, "/api/users/1/library", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/library", map[string]interface{}{"userID": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errorOf(t, w), "malformed request body")
}

func TestCORS(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", allowedOrigin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, allowedOrigin, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsAndSwagger(t *testing.T) {
	r := newTestServer(t)
	listBooks(t, r, "?genres[]=Fantasy")

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/books",status="200"}`)
	assert.Contains(t, w.Body.String(), `store_transactions_total{result="committed"}`)
	assert.Contains(t, w.Body.String(), `book_filter_terms_total{param="genres[]"}`)

	w = do(t, r, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book Catalog API")
	assert.Contains(t, w.Body.String(), "/api/books")
}
