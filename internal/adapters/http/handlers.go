package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, Logger: logger}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	api := rg.Group("/api")
	{
		api.POST("/solve", h.handleSolve)
		api.POST("/deal", h.handleDeal)
		api.POST("/check", h.handleCheck)
		api.POST("/save", h.handleSave)
		api.POST("/load", h.handleLoad)
		api.GET("/list", h.handleList)
	}
}

func parseDeck(s string) domain.Deck {
	if strings.ToLower(strings.TrimSpace(s)) == "double" {
		return domain.DoubleDigit
	}
	return domain.SingleDigit
}

// ---- Solve ----

type solveReq struct {
	Numbers []int `json:"numbers" binding:"required"`
}

type solveResp struct {
	Numbers    []int    `json:"numbers"`
	Solutions  []string `json:"solutions"`
	Count      int      `json:"count"`
	DurationMs int64    `json:"durationMs"`
	Trees      int      `json:"trees"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	sols, st, err := h.UC.Solve(c.Request.Context(), req.Numbers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, solveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Numbers:    req.Numbers,
		Solutions:  sols,
		Count:      len(sols),
		DurationMs: st.Duration.Milliseconds(),
		Trees:      st.Trees,
	})
}

// ---- Deal ----

type dealReq struct {
	Count int    `json:"count,omitempty"`
	Seed  int64  `json:"seed,omitempty"`
	Deck  string `json:"deck,omitempty"`
}

type dealResp struct {
	Games      []*domain.Game `json:"games,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Trees      int            `json:"trees,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleDeal(c *gin.Context) {
	var req dealReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, dealResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dealer := generator.NewSeededDealer(seed, parseDeck(req.Deck))
	games, st, err := h.UC.Deal(c.Request.Context(), req.Count, dealer)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidCount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dealResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dealResp{
		Games:      games,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Trees:      st.Trees,
	})
}

// ---- Check ----

type checkReq struct {
	Numbers    []int  `json:"numbers" binding:"required,len=4"`
	Expression string `json:"expression" binding:"required"`
}

type checkResp struct {
	Verdict domain.Verdict `json:"verdict"`
	Error   string         `json:"error,omitempty"`
}

func (h *Handler) handleCheck(c *gin.Context) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	var hand [4]int
	copy(hand[:], req.Numbers)
	v, err := h.UC.Check(c.Request.Context(), hand, req.Expression)
	if err != nil {
		c.JSON(http.StatusBadRequest, checkResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, checkResp{Verdict: v})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var g domain.Game
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &g); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: g.ID})
}

type loadReq struct {
	ID string `json:"id" binding:"required"`
}

type loadResp struct {
	Game  *domain.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	g, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Game: g})
}

type listResp struct {
	Games []domain.GameMeta `json:"games"`
	Error string            `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	gs, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Games: gs})
}
