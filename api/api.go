package api

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// New creates a new mux router and all the routes
func New() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}
