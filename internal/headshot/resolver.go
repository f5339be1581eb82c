// Package headshot resolves best-effort player photo URLs from a static
// id-mapping CSV (the dynastyprocess db_playerids export). Lookups never
// fail the caller: anything that goes wrong reports not-found.
package headshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

const (
	espnURLTemplate    = "https://a.espncdn.com/i/headshots/nfl/players/full/%s.png"
	sleeperURLTemplate = "https://sleepercdn.com/content/nfl/players/%s.jpg"
)

var (
	nameRe  = regexp.MustCompile(`[^a-z0-9 ]+`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// MergeName normalizes a display name into the join key used by the
// mapping file: lower-cased, punctuation stripped, whitespace collapsed.
// Pure and idempotent.
func MergeName(name string) string {
	s := nameRe.ReplaceAllString(strings.ToLower(name), "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

type entry struct {
	mergeName string
	team      string
	season    int
	hasSeason bool
	espnID    string
	sleeperID string
}

// Resolver maps (name, team) to a photo URL. The mapping file is loaded at
// most once per process; a missing or unparsable file leaves the resolver
// permanently empty, so concurrent readers only ever see the immutable
// post-load state.
type Resolver struct {
	path    string
	once    sync.Once
	entries []entry
}

// New creates a resolver over the mapping CSV at path. The file is not
// touched until the first lookup.
func New(path string) *Resolver {
	return &Resolver{path: path}
}

// URL returns a headshot URL for a player name and optional team
// abbreviation. ESPN ids are preferred over Sleeper ids. ok=false means no
// usable mapping row exists; it is never an error.
func (r *Resolver) URL(name, team string) (string, bool) {
	r.once.Do(r.load)
	if len(r.entries) == 0 {
		return "", false
	}

	mn := MergeName(name)
	if mn == "" {
		return "", false
	}

	var candidates []entry
	for _, e := range r.entries {
		if e.mergeName == mn {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	// Narrow by team only when at least one candidate matches; a stale
	// team abbreviation should not hide the player entirely.
	if teamAbbr := strings.ToUpper(strings.TrimSpace(team)); teamAbbr != "" {
		var narrowed []entry
		for _, e := range candidates {
			if e.team == teamAbbr {
				narrowed = append(narrowed, e)
			}
		}
		if len(narrowed) > 0 {
			candidates = narrowed
		}
	}

	best := candidates[0]
	for _, e := range candidates[1:] {
		// Strictly greater, so the earliest row wins season ties and
		// rows without a season sort last.
		if e.hasSeason && (!best.hasSeason || e.season > best.season) {
			best = e
		}
	}

	if id := cleanID(best.espnID); id != "" {
		return fmt.Sprintf(espnURLTemplate, id), true
	}
	if id := cleanID(best.sleeperID); id != "" {
		return fmt.Sprintf(sleeperURLTemplate, id), true
	}
	return "", false
}

func (r *Resolver) load() {
	f, err := os.Open(r.path)
	if err != nil {
		return
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err != nil {
		return
	}
	idx := func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	iName := idx("merge_name")
	iTeam := idx("team")
	if iName < 0 || iTeam < 0 {
		return
	}
	iSeason := idx("db_season")
	iESPN := idx("espn_id")
	iSleeper := idx("sleeper_id")

	field := func(rec []string, i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var entries []entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unparsable file caches as permanently unavailable.
			return
		}
		e := entry{
			mergeName: field(rec, iName),
			team:      strings.ToUpper(field(rec, iTeam)),
			espnID:    field(rec, iESPN),
			sleeperID: field(rec, iSleeper),
		}
		if s := field(rec, iSeason); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				e.season = n
				e.hasSeason = true
			}
		}
		entries = append(entries, e)
	}

	r.entries = entries
}

func cleanID(id string) string {
	if id == "" || strings.EqualFold(id, "nan") {
		return ""
	}
	return id
}
