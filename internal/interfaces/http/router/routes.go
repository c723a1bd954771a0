package router

import (
	"github.com/gin-gonic/gin"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/handler"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	Auth        *handler.AuthHandler
	Phone       *handler.PhoneHandler
	Reservation *handler.ReservationHandler
	Timetable   *handler.TimetableHandler
	Teacher     *handler.TeacherHandler
	Banner      *handler.BannerHandler
	Popup       *handler.PopupHandler
	Briefing    *handler.BriefingHandler
	Review      *handler.ReviewHandler
	Subscriber  *handler.SubscriberHandler
	Upload      *handler.UploadHandler
	System      *handler.SystemHandler
}

// Options carries cross-cutting route configuration
type Options struct {
	// Session resolves the cookie and loads the member for every API route
	Session gin.HandlerFunc
	// AuthRateLimit throttles login, signup and verification-code
	// endpoints per client IP. Nil disables throttling.
	AuthRateLimit gin.HandlerFunc
}

// Setup wires all API routes onto the engine
func Setup(engine *gin.Engine, h Handlers, opts Options) {
	// Health check stays outside /api and the session middleware
	engine.GET("/healthz", h.System.Health)

	routerOpts := []RouterOption{}
	if opts.Session != nil {
		routerOpts = append(routerOpts, WithMiddleware(opts.Session))
	}
	r := NewRouter(engine, routerOpts...)

	throttled := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if opts.AuthRateLimit == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{opts.AuthRateLimit}, handlers...)
	}

	auth := NewDomainGroup("auth", "/auth").
		POST("/register", throttled(h.Auth.Register)...).
		POST("/login", throttled(h.Auth.Login)...).
		POST("/logout", h.Auth.Logout).
		GET("/me", h.Auth.Me).
		POST("/phone/send", throttled(h.Phone.SendCode)...).
		POST("/phone/verify", throttled(h.Phone.VerifyCode)...)

	public := NewDomainGroup("public", "").
		GET("/banners", h.Banner.List).
		GET("/popups", h.Popup.ListActive).
		GET("/briefings", h.Briefing.List).
		GET("/reviews", h.Review.List).
		GET("/timetables", h.Timetable.List).
		GET("/timetables/:id", h.Timetable.Get).
		GET("/teachers", h.Teacher.List).
		POST("/subscribers", h.Subscriber.Subscribe).
		GET("/system/info", h.System.GetSystemInfo)

	member := NewDomainGroup("member", "").
		Use(middleware.RequireMember()).
		POST("/reservations", h.Reservation.Create)

	admin := NewDomainGroup("admin", "/admin").
		Use(middleware.RequireAdmin()).
		GET("/reservations", h.Reservation.ListAll).
		DELETE("/reservations/:id", h.Reservation.Delete).
		POST("/timetables", h.Timetable.Create).
		PUT("/timetables/:id", h.Timetable.Update).
		DELETE("/timetables/:id", h.Timetable.Delete).
		POST("/teachers", h.Teacher.Create).
		PUT("/teachers/:id", h.Teacher.Update).
		DELETE("/teachers/:id", h.Teacher.Delete).
		POST("/banners", h.Banner.Create).
		DELETE("/banners/:id", h.Banner.Delete).
		GET("/popups", h.Popup.List).
		POST("/popups", h.Popup.Create).
		DELETE("/popups/:id", h.Popup.Delete).
		POST("/briefings", h.Briefing.Create).
		DELETE("/briefings/:id", h.Briefing.Delete).
		POST("/reviews", h.Review.Create).
		DELETE("/reviews/:id", h.Review.Delete).
		GET("/subscribers", h.Subscriber.List).
		DELETE("/subscribers/:id", h.Subscriber.Delete).
		POST("/uploads", h.Upload.Upload)

	r.Register(auth).
		Register(public).
		Register(member).
		Register(admin).
		Setup()
}
