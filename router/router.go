package router

import (
	"net/http"

	"adboard/app/controllers"
	"adboard/app/middleware"
)

func NewRouter(adCtrl *controllers.AdvertisementController, userCtrl *controllers.UserController, authCtrl *controllers.AuthController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})

	mux.HandleFunc("GET /advertisements", adCtrl.List)
	mux.HandleFunc("GET /advertisements/{id}", adCtrl.Get)
	mux.HandleFunc("POST /advertisements", adCtrl.Create)
	mux.HandleFunc("PATCH /advertisements/{id}", adCtrl.Update)
	mux.HandleFunc("DELETE /advertisements/{id}", adCtrl.Delete)

	mux.HandleFunc("POST /users", userCtrl.Create)
	mux.HandleFunc("GET /users/{id}", userCtrl.Get)
	mux.HandleFunc("PATCH /users/{id}", userCtrl.Update)
	mux.HandleFunc("DELETE /users/{id}", userCtrl.Delete)

	mux.HandleFunc("POST /login", authCtrl.Login)
	mux.Handle("GET /users/me", mw.RequireAuth(http.HandlerFunc(authCtrl.Me)))

	return mux
}
