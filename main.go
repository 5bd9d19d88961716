package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"smallbazaar/internal/database"
	"smallbazaar/internal/handlers"
	"smallbazaar/internal/repositories"
	"smallbazaar/internal/services"
	"smallbazaar/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:9000, http://localhost:3000")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	corsOrigins := viper.GetString("CORS_ORIGINS")
	maxOpenConns := viper.GetInt("DB_MAX_OPEN_CONNS")

	// --- Initialize RabbitMQ client ---
	// Optional: without a broker the order service skips event publication.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, order events will not be published")
	}

	// --- Initialize repositories ---
	// Without DATABASE_URL the in-memory repositories back the service, so
	// the API can be exercised locally without PostgreSQL.
	var productRepo repositories.ProductRepository
	var orderRepo repositories.OrderRepository
	if databaseURL != "" {
		db, err := database.Open(databaseURL, maxOpenConns)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
		orderRepo = repositories.NewGORMOrderRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory repositories")
		productRepo = repositories.NewMockProductRepository()
		orderRepo = repositories.NewMockOrderRepository()
	}

	// --- Initialize services ---
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, mqClient)

	// --- Initialize handlers ---
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Initialize Fiber app ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))

	// --- API routes ---
	// Registered at the root: the storefront and admin frontends call
	// /products/... and /orders/... without a version prefix.
	productHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	// --- Health check endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ consumer ---
	// Order events are consumed here only to log them; fulfilment systems
	// would attach their own consumers to the same queue.
	if mqClient != nil {
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received order event %s (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.Consume(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
