package setup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apibench-server/db"
	"apibench-server/routes"
	"apibench-server/token"

	"github.com/gorilla/mux"
)

func MustLoadConfig() {
	err := token.LoadConfig()
	if err != nil {
		log.Fatal("Error loading token config: ", err)
	}
}

func MustInitDb() {
	err := db.Connect()
	if err != nil {
		log.Fatal("Error initializing database: ", err)
	}

	err = db.MigrationsUp()
	if err != nil {
		log.Fatal("Error running migrations: ", err)
	}
}

func StartServer(r *mux.Router) {
	if os.Getenv("GOENV") == "development" {
		log.Println("In development mode.")
	}

	// Get externalPort from the environment variable or default to 3000
	externalPort := os.Getenv("PORT")
	if externalPort == "" {
		externalPort = "3000"
	}

	routes.AddHealthRoutes(r)
	routes.AddApiRoutes(r)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", externalPort),
		Handler: r,
	}

	go startServer(server)
	log.Println("Started server on port " + externalPort)

	sigTermChan := make(chan os.Signal, 1)
	signal.Notify(sigTermChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigTermChan

	// Stop accepting connections and drain in-flight requests
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v\n", err)
	}

	log.Println("Server shut down")
}

func startServer(server *http.Server) {
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server on %s: %v", server.Addr, err)
	}
}
