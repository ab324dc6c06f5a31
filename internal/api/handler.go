package api

import (
	"github.com/gin-gonic/gin"

	"rostercheck/internal/config"
	"rostercheck/internal/pipeline"
	"rostercheck/internal/store"
)

// Handler API 처리기
type Handler struct {
	cfg   *config.AppConfig
	store *store.Store
	pipe  *pipeline.Pipeline
}

// NewHandler API 처리기 생성
func NewHandler(cfg *config.AppConfig, st *store.Store, pipe *pipeline.Pipeline) *Handler {
	return &Handler{cfg: cfg, store: st, pipe: pipe}
}

// RegisterRoutes API 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 시스템 상태
	router.GET("/status", h.GetStatus)

	// 명부 업로드/검증
	router.POST("/upload", h.Upload)
	router.POST("/validate", h.Validate)

	// 검증 실행 이력
	router.GET("/history", h.History)

	// 검증 도우미 (스텁)
	router.POST("/assistant", h.Assistant)
}
