package repositories

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

// maxMenuLine bounds a single CSV line; longer lines fail the whole load.
const maxMenuLine = 1 << 20

// MaxMenuPrice is the highest price a catalog line may carry. Lines above it
// are skipped like any other malformed line.
const MaxMenuPrice int64 = 1_000_000_000_000

// SetMenuRepository reads the feast menu CSV from a disk.
type SetMenuRepository struct {
	disk storage.Disk
}

func NewSetMenuRepository(disk storage.Disk) *SetMenuRepository {
	return &SetMenuRepository{disk: disk}
}

// LoadMenus parses the CSV at path. A missing file returns an error wrapping
// storage.ErrNotExist; any other read failure is returned as-is and no
// entries are kept.
func (r *SetMenuRepository) LoadMenus(path string) ([]models.SetMenu, error) {
	rc, err := r.disk.GetStream(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	menus, err := ParseSetMenus(rc)
	if err != nil {
		return nil, fmt.Errorf("repositories: read %s: %w", path, err)
	}
	return menus, nil
}

// ParseSetMenus reads "id,name,price,ingredients" lines after a header line.
// Malformed lines are skipped; the first line for an id wins. Entries keep
// file order.
func ParseSetMenus(r io.Reader) ([]models.SetMenu, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxMenuLine)

	var (
		out  = []models.SetMenu{}
		seen = map[string]bool{}
		line = 0
	)
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		menu, ok := parseMenuLine(text)
		if !ok {
			logger.Debug("repositories: skipped menu line", "line", line)
			continue
		}
		key := models.NormalizeID(menu.ID)
		if seen[key] {
			logger.Debug("repositories: duplicate menu id dropped", "line", line, "id", menu.ID)
			continue
		}
		seen[key] = true
		out = append(out, menu)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseMenuLine(text string) (models.SetMenu, bool) {
	parts := splitFields(text)
	if len(parts) != 4 {
		return models.SetMenu{}, false
	}

	id := strings.TrimSpace(parts[0])
	if id == "" {
		return models.SetMenu{}, false
	}
	price, ok := parsePrice(strings.TrimSpace(parts[2]))
	if !ok {
		return models.SetMenu{}, false
	}

	return models.SetMenu{
		ID:          id,
		Name:        strings.TrimSpace(parts[1]),
		Price:       price,
		Ingredients: joinIngredients(parts[3]),
	}, true
}

// splitFields splits on commas and drops trailing empty fields, so
// "a,b,c," has three fields.
func splitFields(text string) []string {
	parts := strings.Split(text, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// parsePrice accepts a non-negative decimal with no fractional value up to
// MaxMenuPrice: "500000" and "500000.00" are 500000, "12.5" is rejected.
func parsePrice(raw string) (int64, bool) {
	if !validate.Match(raw, validate.Decimal) {
		return 0, false
	}
	whole, frac, _ := strings.Cut(raw, ".")
	if strings.Trim(frac, "0") != "" {
		return 0, false
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || n > MaxMenuPrice {
		return 0, false
	}
	return n, true
}

// joinIngredients splits the blob on '#' and '"', trims every piece and
// joins the non-empty ones with newlines.
func joinIngredients(blob string) string {
	pieces := strings.FieldsFunc(blob, func(r rune) bool { return r == '#' || r == '"' })
	lines := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return strings.Join(lines, "\n")
}
