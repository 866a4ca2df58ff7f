package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"Farolero/services/game"
	"Farolero/services/save"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RunController drives a single run through the engine's action API. The
// engine is single-threaded by contract, so the controller serializes all
// access with a mutex.
type RunController struct {
	Store *save.Store

	mu  sync.Mutex
	run *game.Game
}

func NewRunController(db *gorm.DB) *RunController {
	return &RunController{Store: save.NewStore(db)}
}

// errorStatus maps the engine's recoverable error kinds onto HTTP codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, save.ErrSlotNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrCorruptSnapshot):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (rc *RunController) fail(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

// requireRun must be called with the mutex held.
func (rc *RunController) requireRun(c *gin.Context) bool {
	if rc.run == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no active run, start one with /game/new"})
		return false
	}
	return true
}

// @Summary Starts a new run
// @Description Starts a run from the given seed (defaults to DEFAULT_SEED or the clock)
// @Tags game
// @Produce json
// @Success 200 {object} object{state=object}
// @Router /game/new [post]
func (rc *RunController) NewGame() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Seed *uint64 `json:"seed"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		seed := defaultSeed()
		if req.Seed != nil {
			seed = *req.Seed
		}

		rc.mu.Lock()
		defer rc.mu.Unlock()

		rc.run = game.New(seed)
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

func defaultSeed() uint64 {
	if env := os.Getenv("DEFAULT_SEED"); env != "" {
		if seed, err := strconv.ParseUint(env, 10, 64); err == nil {
			return seed
		}
		log.Printf("[CONFIG-WARN] Ignoring invalid DEFAULT_SEED %q", env)
	}
	return uint64(time.Now().UnixNano())
}

// @Summary Current observable state
// @Tags game
// @Produce json
// @Router /game/state [get]
func (rc *RunController) State() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

// @Summary Deals cards into the pool
// @Tags game
// @Produce json
// @Router /game/deal [post]
func (rc *RunController) Deal() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		pool, err := rc.run.Deal()
		if err != nil {
			rc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"pool": pool, "state": rc.run.View()})
	}
}

// @Summary Discards pool cards and draws replacements
// @Tags game
// @Produce json
// @Router /game/discard [post]
func (rc *RunController) Discard() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Indices []int `json:"indices"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		if err := rc.run.Discard(req.Indices); err != nil {
			rc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

// @Summary Plays exactly 5 pool cards against the blind
// @Tags game
// @Produce json
// @Router /game/play [post]
func (rc *RunController) Play() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Indices []int `json:"indices"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		result, err := rc.run.Play(req.Indices)
		if err != nil {
			rc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": result, "state": rc.run.View()})
	}
}

// @Summary Buys a shop offer
// @Tags shop
// @Produce json
// @Router /shop/buy [post]
func (rc *RunController) Buy() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Index int `json:"index"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		if err := rc.run.Buy(req.Index); err != nil {
			rc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

// @Summary Rerolls the shop offers
// @Tags shop
// @Produce json
// @Router /shop/reroll [post]
func (rc *RunController) Reroll() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		if err := rc.run.Reroll(); err != nil {
			rc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

// @Summary Leaves the shop and starts the next blind
// @Tags shop
// @Produce json
// @Router /shop/skip [post]
func (rc *RunController) Skip() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		if err := rc.run.Skip(); err != nil {
			rc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

// @Summary Saves the run into a named slot
// @Tags game
// @Produce json
// @Router /game/save [post]
func (rc *RunController) Save() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Slot string `json:"slot"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Slot == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot name is required"})
			return
		}

		rc.mu.Lock()
		defer rc.mu.Unlock()

		if !rc.requireRun(c) {
			return
		}

		snap, err := rc.run.Snapshot()
		if err != nil {
			rc.fail(c, err)
			return
		}
		if err := rc.Store.Save(req.Slot, snap); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving run"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "run saved", "slot": req.Slot})
	}
}

// @Summary Restores a run from a named slot
// @Tags game
// @Produce json
// @Router /game/load [post]
func (rc *RunController) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Slot string `json:"slot"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Slot == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot name is required"})
			return
		}

		rc.mu.Lock()
		defer rc.mu.Unlock()

		snap, err := rc.Store.Load(req.Slot)
		if err != nil {
			rc.fail(c, err)
			return
		}

		restored, err := game.Restore(snap)
		if err != nil {
			log.Printf("[LOAD-ERROR] Slot %s: %v", req.Slot, err)
			rc.fail(c, err)
			return
		}

		rc.run = restored
		c.JSON(http.StatusOK, gin.H{"state": rc.run.View()})
	}
}

// @Summary Lists saved slots
// @Tags game
// @Produce json
// @Router /game/saves [get]
func (rc *RunController) Saves() gin.HandlerFunc {
	return func(c *gin.Context) {
		runs, err := rc.Store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing saves"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saves": runs})
	}
}
