package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/auth"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/booking"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/db"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/discount"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/gallery"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/llm"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/menu"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/middleware"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/notify"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/offers"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/outbox"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/review"
	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD",
		"BUSINESS_EMAIL",
		"BUSINESS_PHONE",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── NOTIFICATIONS ─────────────────────────
	mailer := notify.NewResendClient()
	whatsapp := notify.NewWhatsAppLogger()

	outboxStore := outbox.NewPostgresStore(pgDB)
	worker := outbox.NewWorker(outboxStore, map[string]outbox.Sender{
		outbox.ChannelEmail:    notify.NewEmailChannel(mailer),
		outbox.ChannelWhatsApp: notify.NewWhatsAppChannel(whatsapp),
	})

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	if err := authService.EnsureAdmin(
		"Admin",
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD"),
	); err != nil {
		log.Fatal("❌ Admin bootstrap failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	bookingRepo := booking.NewPostgresRepository(pgDB)
	discountRepo := discount.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	offerRepo := offers.NewPostgresRepository(pgDB)
	galleryRepo := gallery.NewPostgresRepository(pgDB)
	reviewRepo := review.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	bookingService := booking.NewService(bookingRepo, booking.Config{
		BusinessEmail: os.Getenv("BUSINESS_EMAIL"),
		BusinessPhone: os.Getenv("BUSINESS_PHONE"),
	})
	discountService := discount.NewService(discountRepo, mailer)
	menuService := menu.NewService(menuRepo)
	offerService := offers.NewService(offerRepo)
	reviewService := review.NewService(reviewRepo, llm.NewGeminiClient())

	// ───────────────────────── HANDLERS ─────────────────────────
	bookingHandler := booking.NewHandler(bookingService)
	discountHandler := discount.NewHandler(discountService)
	menuHandler := menu.NewHandler(menuService)
	offerHandler := offers.NewHandler(offerService)
	galleryHandler := gallery.NewHandler(galleryRepo)
	reviewHandler := review.NewHandler(reviewService)
	uploadHandler := storage.NewHandler(r2Client)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/bookings", bookingHandler.Create)
		api.POST("/send-discount", discountHandler.Send)

		api.GET("/menu-items", menuHandler.ListPublic)
		api.GET("/popular-items", menuHandler.ListPopular)
		api.GET("/offers", offerHandler.ListPublic)
		api.GET("/gallery", galleryHandler.ListPublic)

		api.POST("/reviews", reviewHandler.Create)
		api.GET("/reviews", reviewHandler.ListPublic)
		api.GET("/reviews/summary", reviewHandler.Summary)
		api.POST("/seed-reviews", reviewHandler.Seed)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	// Same /api paths as the storefront; the write methods and the
	// dashboard listings require the admin session.
	admin := r.Group("/api",
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		// Bookings
		admin.GET("/bookings", bookingHandler.List)
		admin.GET("/bookings/:id", bookingHandler.Get)
		admin.PUT("/bookings/:id", bookingHandler.Update)
		admin.PATCH("/bookings/:id", bookingHandler.Update)
		admin.DELETE("/bookings/:id", bookingHandler.Delete)

		// Discounts
		admin.GET("/discounts", discountHandler.List)
		admin.PATCH("/discounts/:id/use", discountHandler.MarkUsed)

		// Menu
		admin.POST("/menu-items", menuHandler.Create)
		admin.PUT("/menu-items/:id", menuHandler.Update)
		admin.DELETE("/menu-items/:id", menuHandler.Delete)

		// Offers
		admin.POST("/offers", offerHandler.Create)
		admin.PUT("/offers/:id", offerHandler.Update)
		admin.DELETE("/offers/:id", offerHandler.Delete)

		// Gallery
		admin.POST("/gallery", galleryHandler.Create)
		admin.PUT("/gallery/:id", galleryHandler.Update)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)

		// Reviews
		admin.PATCH("/reviews/:id", reviewHandler.SetFlags)
		admin.DELETE("/reviews/:id", reviewHandler.Delete)

		// Uploads
		admin.POST("/upload", uploadHandler.Upload)
	}

	// Dashboard listings include inactive/unverified records, so they
	// live under their own prefix instead of changing the public shape.
	dashboard := r.Group("/api/admin",
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		dashboard.GET("/menu-items", menuHandler.ListAdmin)
		dashboard.GET("/offers", offerHandler.ListAdmin)
		dashboard.GET("/gallery", galleryHandler.ListAdmin)
		dashboard.GET("/reviews", reviewHandler.ListAdmin)
	}

	// ───────────────────────── OUTBOX WORKER ─────────────────────────
	go worker.Run(context.Background())

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
