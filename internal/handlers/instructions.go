package handlers

import (
	"fmt"
	"net/http"
)

const instructionsText = "Try POSTing data to /compute such as: `curl localhost:8002/compute -XPOST -d '...'`"

// Instructions handles GET / with a plain-text usage hint
func Instructions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, instructionsText)
}
