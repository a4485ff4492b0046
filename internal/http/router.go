package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khauvukhanh/web-clot/internal/config"
	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/internal/http/handlers"
	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/http/render"
	"github.com/khauvukhanh/web-clot/internal/modules/categories"
	"github.com/khauvukhanh/web-clot/internal/modules/orders"
	"github.com/khauvukhanh/web-clot/internal/modules/products"
	"github.com/khauvukhanh/web-clot/internal/storage"
)

// Deps carries everything the router needs wired up.
type Deps struct {
	Cfg     config.Config
	Logger  *slog.Logger
	Store   storage.Storage
	CatMgr  *categories.Manager
	ProdMgr *products.Manager
	OrdMgr  *orders.Manager
}

func NewRouter(d Deps) *gin.Engine {
	if d.Cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	flashCodec := flash.NewCodec(d.Cfg.SessionSecret, "webclot_flash", d.Cfg.SecureCookies)
	sessCfg := middleware.SessionCfg{
		Secret:     d.Cfg.SessionSecret,
		CookieName: "webclot_session",
		Secure:     d.Cfg.SecureCookies,
		TTL:        d.Cfg.SessionTTL,
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.Session(sessCfg))
	r.Use(middleware.ErrorHandler(d.Logger))

	r.SetHTMLTemplate(render.Templates())
	r.Static("/assets", "./web/assets")

	// The local driver's URLs only resolve if the router serves its
	// directory; S3 URLs point at the bucket and need nothing here.
	if l, ok := d.Store.(*storage.Local); ok {
		r.Static(l.URLPrefix, l.BaseDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	session := handlers.NewSessionHandler(sessCfg, flashCodec)
	r.GET("/session", session.Get)
	r.POST("/session", session.Post)
	r.POST("/logout", session.Logout)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/categories")
	})

	admin := r.Group("/admin", middleware.RequireSession(flashCodec))
	{
		cats := handlers.NewCategoriesHandler(d.CatMgr, flashCodec)
		admin.GET("/categories", cats.List)
		admin.POST("/categories", cats.Create)
		admin.POST("/categories/:id", cats.Update)
		admin.POST("/categories/:id/delete", cats.Delete)

		prods := handlers.NewProductsHandler(d.ProdMgr, d.CatMgr, flashCodec)
		admin.GET("/products", prods.List)
		admin.POST("/products", prods.Create)
		admin.POST("/products/:id", prods.Update)
		admin.POST("/products/:id/delete", prods.Delete)

		ords := handlers.NewOrdersHandler(d.OrdMgr, flashCodec)
		admin.GET("/orders", ords.List)
		admin.POST("/orders/:id/status", ords.UpdateStatus)

		uploads := handlers.NewUploadsHandler(d.Store)
		admin.POST("/uploads", uploads.Post)
	}

	return r
}
