package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// Privacy-conscious visitor tracking record
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Overlay widgets recorded by RecordOpen.
const (
	WidgetGallery     = "gallery"
	WidgetCertificate = "certificate"
	WidgetAchievement = "achievement"
	WidgetVideo       = "video"
)

// ItemStat counts how often one item was opened in a lightbox.
type ItemStat struct {
	Widget  string `json:"widget"`
	ItemKey string `json:"item_key"`
	Opens   int64  `json:"opens"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	TotalOpens       int64           `json:"total_opens"`
	TopItems         []ItemStat      `json:"top_items"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
}

// TrackVisit records one page view.
func (d *DB) TrackVisit(hashedIP, userAgent, path string, at time.Time) error {
	_, err := d.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, formatTime(at))
	return errors.Wrap(err, "recording visitor")
}

// RecordOpen records one lightbox/modal open.
func (d *DB) RecordOpen(widget, itemKey, hashedIP string, at time.Time) error {
	_, err := d.Exec(`
		INSERT INTO overlay_opens (id, widget, item_key, hashed_ip, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), widget, itemKey, hashedIP, formatTime(at))
	return errors.Wrapf(err, "recording %s open", widget)
}

// Cleanup deletes analytics older than months before now and reports how
// many rows were removed.
func (d *DB) Cleanup(months int, now time.Time) (int64, error) {
	cutoff := formatTime(now.AddDate(0, -months, 0))

	var total int64
	for _, table := range []string{"visitors", "overlay_opens"} {
		result, err := d.Exec(`DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, errors.Wrapf(err, "cleaning up %s", table)
		}
		n, _ := result.RowsAffected()
		total += n
	}
	return total, nil
}

// Stats gathers the admin dashboard numbers.
func (d *DB) Stats(now time.Time) (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.TotalOpens, "SELECT COUNT(*) FROM overlay_opens", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE timestamp >= ?",
			[]any{formatTime(now.UTC().Truncate(24 * time.Hour))}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE timestamp >= ?",
			[]any{formatTime(now.AddDate(0, 0, -7))}},
	}
	for _, c := range counts {
		if err := d.QueryRow(c.query, c.args...).Scan(c.dest); err != nil {
			return nil, errors.Wrap(err, "counting visitors")
		}
	}

	top, err := d.TopItems(10)
	if err != nil {
		return nil, err
	}
	stats.TopItems = top

	recent, err := d.RecentVisitors(50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

// TopItems lists the most opened lightbox items.
func (d *DB) TopItems(limit int) ([]ItemStat, error) {
	rows, err := d.Query(`
		SELECT widget, item_key, COUNT(*) AS opens
		FROM overlay_opens
		GROUP BY widget, item_key
		ORDER BY opens DESC, widget, item_key
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying top items")
	}
	defer rows.Close()

	var items []ItemStat
	for rows.Next() {
		var s ItemStat
		if err := rows.Scan(&s.Widget, &s.ItemKey, &s.Opens); err != nil {
			continue
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// RecentVisitors lists visits newest first.
func (d *DB) RecentVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := d.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), CAST(timestamp AS TEXT)
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying visitors")
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			continue
		}
		v.Timestamp, _ = time.Parse(timeLayout, ts)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
