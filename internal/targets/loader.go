package targets

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

// Load reads target companies from a CSV file with a header row. Required
// columns: company, domain, careers_url. The news_url column is optional
// and enables direct news-page prospecting for that company.
func Load(path string) ([]models.Target, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open targets file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse targets file")
	}
	if len(rows) == 0 {
		return nil, errors.New("targets file is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"company", "domain", "careers_url"} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("targets file is missing column %q", required)
		}
	}

	var result []models.Target
	for _, row := range rows[1:] {
		target := models.Target{
			Company:    field(row, columns, "company"),
			Domain:     field(row, columns, "domain"),
			CareersURL: field(row, columns, "careers_url"),
			NewsURL:    field(row, columns, "news_url"),
		}
		result = append(result, target)
	}
	return result, nil
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
