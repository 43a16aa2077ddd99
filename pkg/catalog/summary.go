package catalog

import "sort"

// Summary is the lightweight listing projection of a record, emitted in
// games.json and new.json.
type Summary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Genres      []string     `json:"genres"`
	Categories  []string     `json:"categories"`
	Players     Players      `json:"players"`
	AddedAt     string       `json:"addedAt"`
	UpdatedAt   string       `json:"updatedAt"`
	Media       SummaryMedia `json:"media"`
	Homepage    *string      `json:"homepage,omitempty"`
	Steam       *SteamLink   `json:"steam,omitempty"`
}

// SummaryMedia carries only the single-image references of a record.
type SummaryMedia struct {
	Cover string `json:"cover"`
	Hero  string `json:"hero"`
	Icon  string `json:"icon"`
}

// Summarize projects a record into its listing shape. Homepage and steam are
// carried over only when present on the source record.
func Summarize(record *Record) Summary {
	return Summary{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Genres:      record.Genres,
		Categories:  record.Categories,
		Players:     record.Players,
		AddedAt:     record.AddedAt,
		UpdatedAt:   record.UpdatedAt,
		Media: SummaryMedia{
			Cover: record.Media.Cover,
			Hero:  record.Media.Hero,
			Icon:  record.Media.Icon,
		},
		Homepage: record.Homepage,
		Steam:    record.Steam,
	}
}

// SummarizeAll projects every record in the given order.
func SummarizeAll(records []*Record) []Summary {
	summaries := make([]Summary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, Summarize(record))
	}
	return summaries
}

// Newest returns the summaries re-ordered newest first (addedAt, falling
// back to updatedAt) and truncated to limit. A non-positive limit yields an
// empty slice.
func Newest(summaries []Summary, limit int) []Summary {
	sorted := make([]Summary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return newestTimestamp(sorted[i]) > newestTimestamp(sorted[j])
	})
	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

func newestTimestamp(s Summary) float64 {
	if s.AddedAt != "" {
		return ParseTimestamp(s.AddedAt)
	}
	return ParseTimestamp(s.UpdatedAt)
}
