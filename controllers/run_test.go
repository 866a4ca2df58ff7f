package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"Farolero/models/sqlite"

	sqlitedriver "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "saves.db")
	db, err := gorm.Open(sqlitedriver.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(sqlite.SavedRun{}))

	rc := NewRunController(db)

	router := gin.New()
	router.POST("/game/new", rc.NewGame())
	router.GET("/game/state", rc.State())
	router.POST("/game/deal", rc.Deal())
	router.POST("/game/discard", rc.Discard())
	router.POST("/game/play", rc.Play())
	router.POST("/game/save", rc.Save())
	router.POST("/game/load", rc.Load())
	router.GET("/game/saves", rc.Saves())
	router.POST("/shop/buy", rc.Buy())
	return router
}

func doJSON(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewGameAndState(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/game/new", gin.H{"seed": 42})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(42), response["state"]["seed"])
	assert.Equal(t, "awaiting_deal", response["state"]["phase"])
	assert.Equal(t, float64(60), response["state"]["target"])

	w = doJSON(router, "GET", "/game/state", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStateWithoutRun(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/game/state", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDealAndPlay(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, "POST", "/game/new", gin.H{"seed": 42})

	w := doJSON(router, "POST", "/game/deal", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var state map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Len(t, state["state"]["pool"], 8)

	w = doJSON(router, "POST", "/game/play", gin.H{"indices": []int{0, 1, 2, 3, 4}})
	assert.Equal(t, http.StatusOK, w.Code)

	var played map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &played))
	result := played["result"].(map[string]interface{})
	breakdown := result["breakdown"].(map[string]interface{})
	assert.NotZero(t, breakdown["total_score"])
}

func TestIllegalTransitionIsConflict(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, "POST", "/game/new", gin.H{"seed": 42})

	// Playing before dealing.
	w := doJSON(router, "POST", "/game/play", gin.H{"indices": []int{0, 1, 2, 3, 4}})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Buying outside the shop.
	w = doJSON(router, "POST", "/shop/buy", gin.H{"index": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBadSelectionIsBadRequest(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, "POST", "/game/new", gin.H{"seed": 42})
	doJSON(router, "POST", "/game/deal", nil)

	w := doJSON(router, "POST", "/game/play", gin.H{"indices": []int{0, 1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "POST", "/game/discard", gin.H{"indices": []int{99}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveLoadCycle(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, "POST", "/game/new", gin.H{"seed": 42})
	doJSON(router, "POST", "/game/deal", nil)

	w := doJSON(router, "POST", "/game/save", gin.H{"slot": "checkpoint"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wreck the current run, then load the checkpoint back.
	doJSON(router, "POST", "/game/new", gin.H{"seed": 1})

	w = doJSON(router, "POST", "/game/load", gin.H{"slot": "checkpoint"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(42), response["state"]["seed"])
	assert.Equal(t, "hand_in_play", response["state"]["phase"])

	w = doJSON(router, "GET", "/game/saves", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var saves map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saves))
	assert.Len(t, saves["saves"], 1)
}

func TestLoadMissingSlotIsNotFound(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/game/load", gin.H{"slot": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveRequiresSlotName(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, "POST", "/game/new", gin.H{"seed": 42})

	w := doJSON(router, "POST", "/game/save", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
