package handler

import (
	"net/http"

	"github.com/gridhunt/gridhunt/internal/api/response"
	"github.com/gridhunt/gridhunt/internal/services/dictionary"
)

// DictionaryHandler exposes dictionary state
type DictionaryHandler struct {
	dictionary *dictionary.Service
}

// NewDictionaryHandler creates a new DictionaryHandler
func NewDictionaryHandler(dict *dictionary.Service) *DictionaryHandler {
	return &DictionaryHandler{
		dictionary: dict,
	}
}

// DictionaryStats is the body for GET /dictionary
type DictionaryStats struct {
	Loaded    bool `json:"loaded"`
	WordCount int  `json:"word_count"`
}

// Stats returns whether the dictionary is loaded and how many words it holds
func (h *DictionaryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, DictionaryStats{
		Loaded:    h.dictionary.IsLoaded(),
		WordCount: h.dictionary.WordCount(),
	})
}
