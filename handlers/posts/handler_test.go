package posts

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreatePost_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "bob-id"
	postID := "post-id"

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(postID))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/posts", func(c *gin.Context) {
		c.Set("user_id", userID)
		CreatePost(c)
	})

	body, _ := json.Marshal(map[string]string{"content": "hello"})
	req, _ := http.NewRequest(http.MethodPost, "/api/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "hello", respBody["content"])
	assert.Equal(t, userID, respBody["authorId"])
}

func TestCreatePost_EmptyContent(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/api/posts", func(c *gin.Context) {
		c.Set("user_id", "bob-id")
		CreatePost(c)
	})

	body, _ := json.Marshal(map[string]string{"content": ""})
	req, _ := http.NewRequest(http.MethodPost, "/api/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Post content cannot be empty.", respBody["message"])
}

func TestGetPostByID_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	postID := "post-id"
	authorID := "bob-id"
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow(postID, authorID, "hello", now, now))

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(authorID, "bob"))

	mock.ExpectQuery(`SELECT (.+) FROM "likes" WHERE "likes"\."post_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
			AddRow("like-id", postID, "alice-id"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comments" WHERE post_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	r := testutils.SetupTestRouter()
	r.GET("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		GetPostByID(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "hello", respBody["content"])
	assert.Equal(t, float64(2), respBody["commentsCount"])

	author := respBody["author"].(map[string]interface{})
	assert.Equal(t, "bob", author["username"])

	likes := respBody["likes"].([]interface{})
	assert.Equal(t, []interface{}{"alice-id"}, likes)
}

func TestGetPostByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		GetPostByID(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/posts/unknown-id", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Post not found", respBody["message"])
}

func TestGetExplore_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow("post-2", "bob-id", "second", now, now).
			AddRow("post-1", "alice-id", "first", now.Add(-time.Hour), now.Add(-time.Hour)))

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("bob-id", "bob").
			AddRow("alice-id", "alice"))

	mock.ExpectQuery(`SELECT (.+) FROM "likes" WHERE "likes"\."post_id" IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
			AddRow("like-1", "post-2", "alice-id"))

	mock.ExpectQuery(`SELECT post_id, count\(\*\) as count FROM "comments" WHERE post_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "count"}).
			AddRow("post-1", 4))

	r := testutils.SetupTestRouter()
	r.GET("/api/posts/explore", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		GetExplore(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/posts/explore", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)

	// newest first, each enriched with author, likes and comment count
	assert.Equal(t, "second", respBody[0]["content"])
	assert.Equal(t, "bob", respBody[0]["author"].(map[string]interface{})["username"])
	assert.Equal(t, []interface{}{"alice-id"}, respBody[0]["likes"])
	assert.Equal(t, float64(0), respBody[0]["commentsCount"])

	assert.Equal(t, "first", respBody[1]["content"])
	assert.Equal(t, []interface{}{}, respBody[1]["likes"])
	assert.Equal(t, float64(4), respBody[1]["commentsCount"])
}

func TestGetFeed_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "follows" WHERE follower_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"following_id"}).
			AddRow("bob-id"))

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE author_id IN \(\$1,\$2\) ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow("post-1", "bob-id", "hello", now, now))

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("bob-id", "bob"))

	mock.ExpectQuery(`SELECT (.+) FROM "likes" WHERE "likes"\."post_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))

	mock.ExpectQuery(`SELECT post_id, count\(\*\) as count FROM "comments" WHERE post_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "count"}))

	r := testutils.SetupTestRouter()
	r.GET("/api/posts/feed", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		GetFeed(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/posts/feed", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 1)
	assert.Equal(t, "hello", respBody[0]["content"])
}

func TestUpdatePost_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "bob-id"
	postID := "post-id"
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow(postID, userID, "old content", now, now))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", userID)
		UpdatePost(c)
	})

	body, _ := json.Marshal(map[string]string{"content": "new content"})
	req, _ := http.NewRequest(http.MethodPut, "/api/posts/"+postID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "new content", respBody["content"])
}

func TestUpdatePost_Forbidden(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "post-id"
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow(postID, "bob-id", "hello", now, now))

	r := testutils.SetupTestRouter()
	r.PUT("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		UpdatePost(c)
	})

	body, _ := json.Marshal(map[string]string{"content": "hijacked"})
	req, _ := http.NewRequest(http.MethodPut, "/api/posts/"+postID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Forbidden", respBody["message"])
}

func TestUpdatePost_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.PUT("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		UpdatePost(c)
	})

	body, _ := json.Marshal(map[string]string{"content": "whatever"})
	req, _ := http.NewRequest(http.MethodPut, "/api/posts/unknown-id", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeletePost_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "bob-id"
	postID := "post-id"
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow(postID, userID, "hello", now, now))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes" WHERE post_id = \$1`).
		WithArgs(postID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "comments" WHERE post_id = \$1`).
		WithArgs(postID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "posts" WHERE "posts"\."id" = \$1`).
		WithArgs(postID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", userID)
		DeletePost(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/api/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.Bytes())
}

func TestDeletePost_Forbidden(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "post-id"
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "content", "created_at", "updated_at"}).
			AddRow(postID, "bob-id", "hello", now, now))

	r := testutils.SetupTestRouter()
	r.DELETE("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		DeletePost(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/api/posts/"+postID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeletePost_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.DELETE("/api/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "alice-id")
		DeletePost(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/api/posts/unknown-id", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
