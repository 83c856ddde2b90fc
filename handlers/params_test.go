package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestLimitOffsetDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts", nil)

	limit, offset := limitOffset(req)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}

func TestLimitOffsetParsed(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts?limit=5&offset=40", nil)

	limit, offset := limitOffset(req)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 40, offset)
}

func TestLimitOffsetRejectsNegative(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts?limit=-1&offset=-10", nil)

	limit, offset := limitOffset(req)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}

func TestLimitOffsetRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts?limit=abc&offset=1e3", nil)

	limit, offset := limitOffset(req)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}

func TestLimitIsClamped(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts?limit=10000", nil)

	limit, _ := limitOffset(req)
	assert.Equal(t, 100, limit)
}

func TestUuidVar(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts/x", nil)
	req = mux.SetURLVars(req, map[string]string{"postId": "c56a4180-65aa-42ec-a945-5fd21dec0538"})

	id, ok := uuidVar(req, "postId")
	assert.True(t, ok)
	assert.Equal(t, "c56a4180-65aa-42ec-a945-5fd21dec0538", id)
}

func TestUuidVarMalformed(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts/x", nil)
	req = mux.SetURLVars(req, map[string]string{"postId": "not-a-uuid"})

	_, ok := uuidVar(req, "postId")
	assert.False(t, ok)
}
