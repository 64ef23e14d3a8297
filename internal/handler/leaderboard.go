package handler

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supportedLanguages are the locales seed totals can be formatted in. The
// first entry is the fallback.
var supportedLanguages = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
})

// LeaderboardRow is one ranked player
type LeaderboardRow struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	CharacterID string `json:"character_id"`
	TotalSeeds  int64  `json:"total_seeds"`
	Seeds       string `json:"seeds"` // TotalSeeds grouped for the request locale
	Streak      int    `json:"streak"`
}

// LeaderboardResponse is the ranked page
type LeaderboardResponse struct {
	Locale  string           `json:"locale"`
	Entries []LeaderboardRow `json:"entries"`
}

// HandleLeaderboard returns the top players by total seeds.
func (h *FarmHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, OpLeaderboard, err)
		return
	}

	tag := requestLanguage(r)
	p := message.NewPrinter(tag)

	resp := LeaderboardResponse{
		Locale:  tag.String(),
		Entries: make([]LeaderboardRow, 0, len(entries)),
	}
	for i, e := range entries {
		resp.Entries = append(resp.Entries, LeaderboardRow{
			Rank:        i + 1,
			Username:    e.Username,
			CharacterID: e.CharacterID,
			TotalSeeds:  e.TotalSeeds,
			Seeds:       p.Sprintf("%d", e.TotalSeeds),
			Streak:      e.StreakCount,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func requestLanguage(r *http.Request) language.Tag {
	tag, _ := language.MatchStrings(supportedLanguages, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	base, _ := tag.Base()
	return language.Make(base.String())
}
