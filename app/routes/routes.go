package routes

import (
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the repositories, services and controllers over the
// given Badger DB and returns the application's router.
func SetupRoutes(db *badger.DB, tokens *auth.TokenManager, allowedOrigins []string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"HEAD", "GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Authenticate(tokens))

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	postService := services.NewPostService(postRepo)
	userService := services.NewUserService(userRepo)

	postController := controllers.NewPostController(postService)
	userController := controllers.NewUserController(userService)
	authController := controllers.NewAuthController(userService, tokens)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Post endpoints
	post := api.PathPrefix("/post").Subrouter()
	post.HandleFunc("/create", postController.Create).Methods("POST")
	post.HandleFunc("/getPosts", postController.GetPosts).Methods("GET")
	post.HandleFunc("/deletepost/{postId}", postController.Delete).Methods("DELETE")
	post.HandleFunc("/updatepost/{postId}/{userId}", postController.Update).Methods("PUT")
	post.HandleFunc("/view/{postId}", postController.View).Methods("POST")

	// Auth endpoints
	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/signup", authController.SignUp).Methods("POST")
	authRoutes.HandleFunc("/signin", authController.SignIn).Methods("POST")
	authRoutes.HandleFunc("/signout", authController.SignOut).Methods("POST")

	// User endpoints
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/update/{userId}", userController.Update).Methods("PUT")
	user.HandleFunc("/delete/{userId}", userController.Delete).Methods("DELETE")
	user.HandleFunc("/{userId}", userController.Get).Methods("GET")

	return router
}
