package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/api/handler"
	"github.com/fahadturjmi/GPA-Calculator/internal/api/middleware"
	"github.com/fahadturjmi/GPA-Calculator/internal/api/web"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/memstore"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

// Deps 路由装配所需依赖
type Deps struct {
	Config   *config.Config
	Handler  *handler.Handler
	Service  *service.Service
	Store    *memstore.Client
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(d Deps) (*gin.Engine, error) {
	cfg := d.Config

	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("注册校验规则失败: %w", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("加载报告模板失败: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "store_items": d.Store.Count()})
	})

	// ── 指标 ──
	if cfg.Metrics.Enabled && d.Gatherer != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	var limiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter = middleware.RateLimit(d.Store, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	} else {
		limiter = func(c *gin.Context) { c.Next() }
	}
	session := middleware.Session(&cfg.Session, d.Service.Workspace, d.Logger)

	h := d.Handler

	// ── HTML 报告 ──
	r.GET("/report", middleware.ContentSecurityPolicy(web.ReportCSP()), limiter, session, h.Report.RenderReport)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(limiter)
	{
		// 静态选项与无状态计算（无需会话）
		v1.GET("/grades", h.GPA.GetGrades)
		v1.POST("/gpa/evaluate", h.GPA.Evaluate)

		// 需要会话的路由
		sess := v1.Group("")
		sess.Use(session)
		{
			// 工作区模块
			ws := sess.Group("/workspace")
			{
				ws.GET("", h.Workspace.GetWorkspace)
				ws.DELETE("", h.Workspace.ResetWorkspace)
				ws.PUT("/scale", h.Workspace.SetScale)
				ws.PUT("/theme", h.Workspace.SetTheme)

				ws.POST("/courses", h.Course.AddCourse)
				ws.PATCH("/courses/:id", h.Course.UpdateCourse)
				ws.DELETE("/courses/:id", h.Course.RemoveCourse)
				ws.DELETE("/courses", h.Course.ClearCourses)
			}

			// 报告模块
			report := sess.Group("/report")
			{
				report.GET("", h.Report.GetReport)
				report.GET("/export", h.Report.ExportReport)
			}
		}
	}

	return r, nil
}
