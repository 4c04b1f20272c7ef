package services

import (
	"carshare/internal/app/deps"
	drl "carshare/internal/core/domain/rate_limiter"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	confirmpasswordreset "carshare/internal/core/services/confirm_password_reset"
	createcar "carshare/internal/core/services/create_car"
	createreview "carshare/internal/core/services/create_review"
	deleteuser "carshare/internal/core/services/delete_user"
	getcar "carshare/internal/core/services/get_car"
	getuserbysessiontoken "carshare/internal/core/services/get_user_by_session_token"
	listcarreviews "carshare/internal/core/services/list_car_reviews"
	listcars "carshare/internal/core/services/list_cars"
	loginwithemail "carshare/internal/core/services/log_in_with_email"
	logout "carshare/internal/core/services/log_out"
	ratelimiting "carshare/internal/core/services/rate_limiting"
	sendpasswordresetcode "carshare/internal/core/services/send_password_reset_code"
	setusercoordinates "carshare/internal/core/services/set_user_coordinates"
	signupwithemail "carshare/internal/core/services/sign_up_with_email"
	updateuser "carshare/internal/core/services/update_user"
)

type Services struct {
	SignUpWithEmail       services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	SendPasswordResetCode services.Service[sendpasswordresetcode.Input, sendpasswordresetcode.Result]
	ConfirmPasswordReset  services.Service[confirmpasswordreset.Input, confirmpasswordreset.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateUser            services.Service[updateuser.Input, updateuser.Result]
	DeleteUser            services.Service[deleteuser.Input, deleteuser.Result]
	SetUserCoordinates    services.Service[setusercoordinates.Input, setusercoordinates.Result]

	ListCars       services.Service[listcars.Input, listcars.Result]
	GetCar         services.Service[getcar.Input, getcar.Result]
	CreateCar      services.Service[createcar.Input, createcar.Result]
	CreateReview   services.Service[createreview.Input, createreview.Result]
	ListCarReviews services.Service[listcarreviews.Input, listcarreviews.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.PasswordPolicy,
		deps.SessionTokenGenerator,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresetcode.NewWithResetCodeSending(
			deps.Logger,
			deps.ResetCodeSender,
			sendpasswordresetcode.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.ResetCodeGenerator,
			),
		),
	)
	s.ConfirmPasswordReset = confirmpasswordreset.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.PasswordPolicy,
		deps.Config.MaxPasswordResetAttempts,
	)
	s.GetUserBySessionToken = auth.WithAuthentication(
		deps.SessionRepository,
		getuserbysessiontoken.New(),
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.SessionRepository,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.DeleteUser = auth.WithAuthentication(
		deps.SessionRepository,
		deleteuser.New(
			deps.Logger,
			deps.UnitOfWork,
		),
	)
	s.SetUserCoordinates = auth.WithAuthentication(
		deps.SessionRepository,
		setusercoordinates.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.Now,
		),
	)

	s.ListCars = listcars.New(
		deps.Logger,
		deps.CarRepository,
	)
	s.GetCar = getcar.New(
		deps.Logger,
		deps.CarRepository,
	)
	s.CreateCar = auth.WithAuthentication(
		deps.SessionRepository,
		createcar.New(
			deps.Logger,
			deps.CarRepository,
			deps.Now,
		),
	)
	s.CreateReview = auth.WithAuthentication(
		deps.SessionRepository,
		createreview.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.Now,
		),
	)
	s.ListCarReviews = listcarreviews.New(
		deps.Logger,
		deps.CarRepository,
		deps.ReviewRepository,
	)

	return s
}
