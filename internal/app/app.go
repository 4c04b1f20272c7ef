package app

import (
	"carshare/internal/app/deps"
	"carshare/internal/app/services"
	"carshare/internal/http/handlers/auth"
	confirmpasswordreset "carshare/internal/http/handlers/auth/confirm_password_reset"
	loginwithemail "carshare/internal/http/handlers/auth/log_in_with_email"
	logout "carshare/internal/http/handlers/auth/log_out"
	sendpasswordresetcode "carshare/internal/http/handlers/auth/send_password_reset_code"
	signupwithemail "carshare/internal/http/handlers/auth/sign_up_with_email"
	createcar "carshare/internal/http/handlers/cars/create_car"
	createreview "carshare/internal/http/handlers/cars/create_review"
	getcar "carshare/internal/http/handlers/cars/get_car"
	listcarreviews "carshare/internal/http/handlers/cars/list_car_reviews"
	listcars "carshare/internal/http/handlers/cars/list_cars"
	deleteuser "carshare/internal/http/handlers/user/delete_user"
	me "carshare/internal/http/handlers/user/me"
	setcoordinates "carshare/internal/http/handlers/user/set_coordinates"
	updateuser "carshare/internal/http/handlers/user/update_user"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode
	isDebug := deps.Config.IsDebug

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/code",
		sendpasswordresetcode.New(s.SendPasswordResetCode, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", confirmpasswordreset.New(s.ConfirmPasswordReset))

	usersRouter := chi.NewRouter()
	usersRouter.Use(auth.SetAuthTokenToContext)
	usersRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	usersRouter.Method(http.MethodPatch, "/me", updateuser.New(s.UpdateUser))
	usersRouter.Method(http.MethodDelete, "/{userID:[0-9]+}", deleteuser.New(s.DeleteUser, isDebug))
	usersRouter.Method(
		http.MethodPut,
		"/{userID:[0-9]+}/coordinates",
		setcoordinates.New(s.SetUserCoordinates),
	)

	carsRouter := chi.NewRouter()
	carsRouter.Use(auth.SetAuthTokenToContext)
	carsRouter.Method(http.MethodGet, "/", listcars.New(s.ListCars))
	carsRouter.Method(http.MethodPost, "/", createcar.New(s.CreateCar))
	carsRouter.Method(http.MethodGet, "/{carID:[0-9]+}", getcar.New(s.GetCar))
	carsRouter.Method(http.MethodGet, "/{carID:[0-9]+}/reviews", listcarreviews.New(s.ListCarReviews))
	carsRouter.Method(http.MethodPost, "/{carID:[0-9]+}/reviews", createreview.New(s.CreateReview))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/users", usersRouter)
	router.Mount("/cars", carsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
