package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondJSON(w, status, map[string]string{"error": userMsg})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// checkStoreError handles an error from a store mutation. A persistence
// failure is logged as a warning and the request proceeds as a success,
// because the in-memory state was updated and stays authoritative for the
// session. Any other error fails the request. Returns true when the
// response has been written.
func checkStoreError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrPersistence) {
		log.Printf("Warning: %v", err)
		return false
	}
	respondWithError(w, http.StatusInternalServerError, "Internal server error", "store operation failed", err)
	return true
}
